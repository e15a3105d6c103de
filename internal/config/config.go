package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DefaultSearchDepth is how many directories the ancestor search probes,
// starting with the working directory itself
const DefaultSearchDepth = 10

// DefaultCatalogFile is the catalog bundled with the project, found through the ancestor search
const DefaultCatalogFile = "data/CS 300 ABCU_Advising_Program_Input.csv"

// Environment variables
const (
	EnvCatalogFile = "COURSECAT_FILE"
	EnvSearchDepth = "COURSECAT_SEARCH_DEPTH"
	EnvTheme       = "COURSECAT_THEME"
	EnvFrame       = "COURSECAT_FRAME"
	EnvLogLevel    = "COURSECAT_LOG_LEVEL"
	EnvLogFile     = "COURSECAT_LOG_FILE"
	EnvEditor      = "COURSECAT_EDITOR"
	EnvNoColor     = "NO_COLOR"
)

// CatalogFile returns the catalog file from COURSECAT_FILE env var,
// falling back to DefaultCatalogFile.
func CatalogFile() string {
	if env := os.Getenv(EnvCatalogFile); env != "" {
		return env
	}
	return DefaultCatalogFile
}

// SearchDepth returns the ancestor search depth from COURSECAT_SEARCH_DEPTH.
// Missing, non-numeric or non-positive values give DefaultSearchDepth.
func SearchDepth() int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(EnvSearchDepth)))
	if err != nil || n <= 0 {
		return DefaultSearchDepth
	}
	return n
}

// ThemeName returns the lowercase palette name ("dark", "light", "plain").
// NO_COLOR forces "plain"; unknown values fall back to "dark".
func ThemeName() string {
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		return "plain"
	}
	switch choice := envLower(EnvTheme); choice {
	case "light":
		return "light"
	case "plain", "none", "off":
		return "plain"
	default:
		return "dark"
	}
}

// FrameName returns the lowercase frame style ("ascii", "unicode", "none")
func FrameName() string {
	switch envLower(EnvFrame) {
	case "unicode":
		return "unicode"
	case "none", "off":
		return "none"
	default:
		return "ascii"
	}
}

// LogLevel returns the slog level from COURSECAT_LOG_LEVEL, defaulting to warn
func LogLevel() slog.Level {
	switch envLower(EnvLogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LogFile returns the dashboard log file path, empty when logging is off
func LogFile() string {
	return os.Getenv(EnvLogFile)
}

// Editor returns the editor command from COURSECAT_EDITOR; empty defers to $EDITOR
func Editor() string {
	return strings.TrimSpace(os.Getenv(EnvEditor))
}

func envLower(name string) string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(name)))
}
