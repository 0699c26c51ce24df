package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Page.Size != "letter" || cfg.Page.Orientation != "portrait" {
		t.Errorf("Page = %+v, want letter portrait", cfg.Page)
	}
	if cfg.Theme.Name != "default" {
		t.Errorf("Theme.Name = %q, want default", cfg.Theme.Name)
	}
	if cfg.Render.Backend != "fpdf" {
		t.Errorf("Render.Backend = %q, want fpdf", cfg.Render.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if err != nil && !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error %q does not name field %q", err, tt.fieldName)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Lengths and ranges
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	long := func(n int) string { return strings.Repeat("x", n) }

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid config",
			cfg: Config{
				Document: DocumentConfig{Title: "I-5 Corridor", Date: "auto:long", Language: "en-US"},
				Page:     PageConfig{Size: "a4", Orientation: "landscape", Margin: 36},
				Footer:   FooterConfig{Text: "Draft"},
				Theme:    ThemeConfig{Name: "corridor", TitleColor: "accent"},
				Render:   RenderConfig{Backend: "chrome", MaxPages: 50, Timeout: "45s"},
				Log:      LogConfig{File: "/tmp/corridorpdf.log", MaxSizeMB: 5},
			},
		},
		{
			name: "unknown page size is left to the converter",
			cfg:  Config{Page: PageConfig{Size: "tabloid"}},
		},
		{
			name: "theme path may be long",
			cfg:  Config{Theme: ThemeConfig{Name: "/srv/themes/" + long(80) + ".yaml"}},
		},
		{name: "title too long", cfg: Config{Document: DocumentConfig{Title: long(MaxTitleLength + 1)}}, wantErr: ErrFieldTooLong},
		{name: "footer too long", cfg: Config{Footer: FooterConfig{Text: long(MaxTextLength + 1)}}, wantErr: ErrFieldTooLong},
		{name: "theme name too long", cfg: Config{Theme: ThemeConfig{Name: long(MaxThemeLength + 1)}}, wantErr: ErrFieldTooLong},
		{name: "page size too long", cfg: Config{Page: PageConfig{Size: long(MaxPageSizeLength + 1)}}, wantErr: ErrFieldTooLong},
		{name: "negative margin", cfg: Config{Page: PageConfig{Margin: -1}}, wantErr: ErrInvalidValue},
		{name: "unknown backend", cfg: Config{Render: RenderConfig{Backend: "latex"}}, wantErr: ErrInvalidValue},
		{name: "negative max pages", cfg: Config{Render: RenderConfig{MaxPages: -1}}, wantErr: ErrInvalidValue},
		{name: "max pages over limit", cfg: Config{Render: RenderConfig{MaxPages: MaxPagesLimit + 1}}, wantErr: ErrInvalidValue},
		{name: "bad timeout", cfg: Config{Render: RenderConfig{Timeout: "soon"}}, wantErr: ErrInvalidValue},
		{name: "negative timeout", cfg: Config{Render: RenderConfig{Timeout: "-5s"}}, wantErr: ErrInvalidValue},
		{name: "negative rotation", cfg: Config{Log: LogConfig{MaxBackups: -1}}, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	got, err := RenderConfig{Timeout: "1m30s"}.TimeoutDuration()
	if err != nil {
		t.Fatalf("TimeoutDuration() error = %v", err)
	}
	if got != 90*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 1m30s", got)
	}

	got, err = RenderConfig{}.TimeoutDuration()
	if err != nil || got != 0 {
		t.Errorf("TimeoutDuration() on empty = %v, %v; want 0, nil", got, err)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File lookup and strict parsing
// ---------------------------------------------------------------------------

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, "corridor.yaml", `document:
  title: "US-101 Closures"
  date: "auto"
page:
  size: "a4"
  margin: 36
footer:
  text: "Internal"
theme:
  name: "corridor"
  titleColor: "accent"
render:
  backend: "fpdf"
  maxPages: 20
  timeout: "20s"
log:
  file: "/tmp/corridor.log"
  compress: true
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Document.Title != "US-101 Closures" {
			t.Errorf("Document.Title = %q", cfg.Document.Title)
		}
		if cfg.Page.Size != "a4" || cfg.Page.Margin != 36 {
			t.Errorf("Page = %+v", cfg.Page)
		}
		if cfg.Theme.Name != "corridor" || cfg.Theme.TitleColor != "accent" {
			t.Errorf("Theme = %+v", cfg.Theme)
		}
		if cfg.Render.MaxPages != 20 || cfg.Render.Timeout != "20s" {
			t.Errorf("Render = %+v", cfg.Render)
		}
		if !cfg.Log.Compress {
			t.Error("Log.Compress = false, want true")
		}
	})

	t.Run("loads input and output directories", func(t *testing.T) {
		path := writeConfig(t, "dirs.yaml", `input:
  defaultDir: "/path/to/input"
output:
  defaultDir: "/path/to/output"
  datedName: true
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "/path/to/input" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "/path/to/input")
		}
		if cfg.Output.DefaultDir != "/path/to/output" || !cfg.Output.DatedName {
			t.Errorf("Output = %+v", cfg.Output)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, "invalid.yaml", "theme: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, "unknown.yaml", "theme:\n  name: default\nwatermark: true\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		path := writeConfig(t, "backend.yaml", "render:\n  backend: latex\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

// NOTE: changes the working directory and cannot run in parallel.
func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	if err := os.WriteFile("weekly.yml", []byte("footer:\n  text: weekly\n"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := LoadConfig("weekly")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Footer.Text != "weekly" {
		t.Errorf("Footer.Text = %q, want weekly", cfg.Footer.Text)
	}

	_, err = LoadConfig("missing")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(DirName, "missing.yaml")) {
		t.Errorf("error %q does not list the user config path", err)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("HOME", "/home/planner")

	got := SearchPaths("weekly")
	if len(got) < 2 || got[0] != "weekly.yaml" || got[1] != "weekly.yml" {
		t.Fatalf("SearchPaths() = %v, want local paths first", got)
	}
	if len(got) == 4 && !strings.HasSuffix(got[2], filepath.Join(DirName, "weekly.yaml")) {
		t.Errorf("SearchPaths()[2] = %q, want user config path", got[2])
	}
}
