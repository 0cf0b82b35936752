package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet logs warnings only", verbose: false, wantDebug: false},
		{name: "verbose logs debug", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerConfig{Verbose: tt.verbose}, &buf)

			logger.Debug("debug message", zap.String("alias", "build"))
			logger.Warn("warn message")

			out := buf.String()
			assert.Contains(t, out, "warn message")
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug message"))
		})
	}
}

func TestNewLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "prog.log")
	var console bytes.Buffer
	logger := NewLogger(LoggerConfig{LogFile: path}, &console)

	logger.Warn("shell exited", zap.Int("exit_code", 3))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "shell exited", entry["msg"])
	assert.Equal(t, "prog", entry["logger"])
	assert.EqualValues(t, 3, entry["exit_code"])
	assert.Contains(t, console.String(), "shell exited")
}
