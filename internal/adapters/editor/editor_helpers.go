package editor

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"
)

// fallbackEditors are tried in order when neither an explicit command nor
// $VISUAL/$EDITOR is set.
func fallbackEditors() []string {
	if runtime.GOOS == "windows" {
		return []string{"notepad"}
	}
	return []string{"sensible-editor", "vim", "nano", "vi"}
}

// resolve returns the editor argv, without the file to open.
func (e *ExternalEditor) resolve() ([]string, error) {
	candidates := []string{e.command}
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v, ok := e.lookupEnv(key); ok {
			candidates = append(candidates, v)
		}
	}

	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		argv, err := shellquote.Split(candidate)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot parse editor command %q: %v", ErrUnavailable, candidate, err)
		}
		if len(argv) == 0 {
			continue
		}
		path, err := e.lookPath(argv[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s not found", ErrUnavailable, argv[0])
		}
		argv[0] = path
		return argv, nil
	}

	for _, name := range fallbackEditors() {
		if path, err := e.lookPath(name); err == nil {
			return []string{path}, nil
		}
	}
	return nil, fmt.Errorf("%w: set $EDITOR or PROG_EDITOR", ErrUnavailable)
}
