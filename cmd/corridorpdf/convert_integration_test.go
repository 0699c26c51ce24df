//go:build integration

package main

// Notes:
// - Requires Chrome/Chromium (see doctor). Runs the CLI with the chrome
//   backend against a small directory.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestIntegration_RunChromeBackend(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# Alpha\n\nSome **bold** text")
	writeFile(t, filepath.Join(dir, "b.md"), "```go\nfunc main() {}\n```\n")
	out := filepath.Join(dir, "out")

	env := DefaultEnv()
	stderr := &bytes.Buffer{}
	env.Stdout, env.Stderr = &bytes.Buffer{}, stderr

	code := run(context.Background(), []string{"--backend", "chrome", "-w", "2", "-o", out, dir}, env)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, stderr %q", code, stderr.String())
	}
	for _, name := range []string{"a.pdf", "b.pdf"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("%s is not a PDF", name)
		}
	}
}
