package main

// Notes:
// - discoverFiles: we test single files, recursive directories, ordering,
//   extension filtering and empty directories.
// - resolveOutputPath: we test the output directory and explicit .pdf cases.
// These are acceptable gaps: filesystem errors other than not-exist are not
// simulated.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Input discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "report.md")
	writeFile(t, in, "# Report")

	tests := []struct {
		name      string
		outputDir string
		want      FileToConvert
	}{
		{"next to source", "", FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "report.pdf")}},
		{"output directory", filepath.Join(dir, "out"), FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "out", "report.pdf")}},
		{"explicit pdf", filepath.Join(dir, "final.pdf"), FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "final.pdf"), Explicit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := discoverFiles(in, tt.outputDir)
			if err != nil {
				t.Fatalf("discoverFiles() error = %v", err)
			}
			if diff := cmp.Diff([]FileToConvert{tt.want}, got); diff != "" {
				t.Errorf("discoverFiles() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiscoverFiles_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.md"), "b")
	writeFile(t, filepath.Join(dir, "a.markdown"), "a")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip")
	writeFile(t, filepath.Join(dir, "sub", "c.MD"), "c")

	out := filepath.Join(t.TempDir(), "pdf")
	got, err := discoverFiles(dir, out)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}

	want := []FileToConvert{
		{InputPath: filepath.Join(dir, "a.markdown"), OutputPath: filepath.Join(out, "a.pdf")},
		{InputPath: filepath.Join(dir, "b.md"), OutputPath: filepath.Join(out, "b.pdf")},
		{InputPath: filepath.Join(dir, "sub", "c.MD"), OutputPath: filepath.Join(out, "sub", "c.pdf")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("discoverFiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverFiles_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	writeFile(t, txt, "x")
	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0o750); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing", filepath.Join(dir, "missing.md"), os.ErrNotExist},
		{"wrong extension", txt, ErrInvalidExtension},
		{"no markdown", empty, ErrNoMarkdownFiles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := discoverFiles(tt.input, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("discoverFiles() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{8, false},
		{9, true},
	}
	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error should wrap ErrInvalidWorkerCount", tt.n)
		}
	}
}

// ---------------------------------------------------------------------------
// TestOutputPaths - Derived output names
// ---------------------------------------------------------------------------

func TestHTMLOutputPath(t *testing.T) {
	t.Parallel()

	if got := htmlOutputPath(filepath.Join("out", "a.pdf")); got != filepath.Join("out", "a.html") {
		t.Errorf("htmlOutputPath() = %q", got)
	}
}

func TestDatedOutputPath(t *testing.T) {
	t.Parallel()

	got := datedOutputPath(filepath.Join("out", "report.pdf"), "Q3-Report_2025-03-14.pdf")
	if want := filepath.Join("out", "Q3-Report_2025-03-14.pdf"); got != want {
		t.Errorf("datedOutputPath() = %q, want %q", got, want)
	}
}
