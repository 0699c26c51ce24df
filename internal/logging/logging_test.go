package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ---------------------------------------------------------------------------
// TestOptionsLevel - Console level selection
// ---------------------------------------------------------------------------

func TestOptionsLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want zapcore.Level
	}{
		{name: "default is info", opts: Options{}, want: zapcore.InfoLevel},
		{name: "verbose is debug", opts: Options{Verbose: true}, want: zapcore.DebugLevel},
		{name: "quiet is error", opts: Options{Quiet: true}, want: zapcore.ErrorLevel},
		{name: "quiet wins", opts: Options{Quiet: true, Verbose: true}, want: zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.opts.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNew - Console and file outputs
// ---------------------------------------------------------------------------

func TestNew_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Console: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("hidden")
	logger.Info("converted", zap.String("file", "report.md"))
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(got, "converted") || !strings.Contains(got, "report.md") {
		t.Errorf("console output = %q, want message and field", got)
	}
}

func TestNew_File(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "corridorpdf.log")
	logger, closeFn, err := New(Options{Quiet: true, File: path, Console: &console})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("page laid out", zap.Int("page", 2))
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if !strings.Contains(string(data), `"msg":"page laid out"`) || !strings.Contains(string(data), `"page":2`) {
		t.Errorf("log file = %q, want JSON entry", data)
	}
	if console.Len() != 0 {
		t.Errorf("quiet console received %q", console.String())
	}
}

func TestOrDefault(t *testing.T) {
	t.Parallel()

	if got := orDefault(0, 7); got != 7 {
		t.Errorf("orDefault(0, 7) = %d, want 7", got)
	}
	if got := orDefault(2, 7); got != 2 {
		t.Errorf("orDefault(2, 7) = %d, want 2", got)
	}
}
