package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  log.Level
	}{
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "warn", input: "warn", want: log.WarnLevel},
		{name: "unknown falls back to info", input: "chatty", want: log.InfoLevel},
		{name: "empty falls back to info", input: "", want: log.InfoLevel},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pldl.log")

	logger, closeLog, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Info("cycle finished", "phase", "succeeded")
	if err := closeLog(); err != nil {
		t.Fatalf("close error = %v", err)
	}
	if err := closeLog(); err == nil {
		t.Error("expected second close to report the file already closed")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "cycle finished") {
		t.Errorf("expected log line in file, got %q", string(content))
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Error("expected distinct ids")
	}
	if len(a) != 36 {
		t.Errorf("expected uuid string of length 36, got %d", len(a))
	}
}
