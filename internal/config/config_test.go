package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestCatalogFile(t *testing.T) {
	t.Setenv(EnvCatalogFile, "")
	if got := CatalogFile(); got != DefaultCatalogFile {
		t.Errorf("expected default %q, got %q", DefaultCatalogFile, got)
	}

	t.Setenv(EnvCatalogFile, "/srv/catalog.csv")
	if got := CatalogFile(); got != "/srv/catalog.csv" {
		t.Errorf("expected env override, got %q", got)
	}
}

func TestSearchDepth(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", DefaultSearchDepth},
		{"3", 3},
		{" 25 ", 25},
		{"0", DefaultSearchDepth},
		{"-4", DefaultSearchDepth},
		{"deep", DefaultSearchDepth},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvSearchDepth, tt.value)
			if got := SearchDepth(); got != tt.want {
				t.Errorf("SearchDepth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestThemeName(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		noColor bool
		want    string
	}{
		{name: "default", theme: "", want: "dark"},
		{name: "light", theme: "Light", want: "light"},
		{name: "plain", theme: "plain", want: "plain"},
		{name: "off", theme: "OFF", want: "plain"},
		{name: "unknown", theme: "solarized", want: "dark"},
		{name: "no color wins", theme: "light", noColor: true, want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvTheme, tt.theme)
			if tt.noColor {
				t.Setenv(EnvNoColor, "1")
			} else {
				t.Setenv(EnvNoColor, "")
				os.Unsetenv(EnvNoColor)
			}

			if got := ThemeName(); got != tt.want {
				t.Errorf("ThemeName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrameName(t *testing.T) {
	tests := map[string]string{
		"":        "ascii",
		"ascii":   "ascii",
		"Unicode": "unicode",
		"none":    "none",
		"off":     "none",
		"fancy":   "ascii",
	}

	for value, want := range tests {
		t.Setenv(EnvFrame, value)
		if got := FrameName(); got != want {
			t.Errorf("FrameName() with %q = %q, want %q", value, got, want)
		}
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelWarn,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"error": slog.LevelError,
		"loud":  slog.LevelWarn,
	}

	for value, want := range tests {
		t.Setenv(EnvLogLevel, value)
		if got := LogLevel(); got != want {
			t.Errorf("LogLevel() with %q = %v, want %v", value, got, want)
		}
	}
}

func TestEditor(t *testing.T) {
	t.Setenv(EnvEditor, "  code --wait ")
	if got := Editor(); got != "code --wait" {
		t.Errorf("Editor() = %q, want %q", got, "code --wait")
	}

	t.Setenv(EnvEditor, "")
	if got := Editor(); got != "" {
		t.Errorf("Editor() = %q, want empty", got)
	}
}
