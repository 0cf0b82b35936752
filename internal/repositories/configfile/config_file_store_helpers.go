package configfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/prog/internal/core/domain/config"
	"github.com/mitchellh/go-homedir"
)

// defaultCandidates lists the configuration files tried when no path is given,
// in lookup order.
func (s *ConfigFileStore) defaultCandidates() []string {
	names := []string{
		config.DefaultBaseName + ".json",
		config.DefaultBaseName + ".yml",
		config.DefaultBaseName + ".yaml",
	}
	candidates := make([]string, 0, len(names))
	for _, name := range names {
		if s.dir == "" {
			candidates = append(candidates, "."+string(filepath.Separator)+name)
			continue
		}
		candidates = append(candidates, filepath.Join(s.dir, name))
	}
	return candidates
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// toUserFriendlyPath shortens paths under the home directory to "~/...".
func toUserFriendlyPath(absPath string) string {
	homeDir, err := homedir.Dir()
	if err != nil || homeDir == "" || homeDir == string(filepath.Separator) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(filepath.Separator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(filepath.Separator)))
	}
	return absPath
}
