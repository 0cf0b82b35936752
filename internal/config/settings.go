/*
Package config builds the run settings of prog from command line flags and
PROG_* environment variables.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by prog.
const EnvPrefix = "PROG"

// Settings holds the values that may come from either a flag or the
// environment. A flag set on the command line wins over the environment.
type Settings struct {
	File    string `mapstructure:"file"`
	Verbose bool   `mapstructure:"verbose"`
	Format  string `mapstructure:"format"`
	Shell   string `mapstructure:"shell"`
	Editor  string `mapstructure:"editor"`
	LogFile string `mapstructure:"log-file"`
}

// settingKeys are the flag names bound to the environment.
var settingKeys = []string{"file", "verbose", "format", "shell", "editor", "log-file"}

// Load reads Settings from flags, falling back to PROG_FILE, PROG_VERBOSE,
// PROG_FORMAT, PROG_SHELL, PROG_EDITOR and PROG_LOG_FILE.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range settingKeys {
		if flag := flags.Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("failed to bind flag %s: %w", key, err)
			}
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	if s.LogFile != "" {
		expanded, err := homedir.Expand(s.LogFile)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to expand log file path %s: %w", s.LogFile, err)
		}
		s.LogFile = expanded
	}
	return s, nil
}
