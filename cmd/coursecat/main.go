package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"coursecat/internal/adapters/editor"
	"coursecat/internal/adapters/filesystem"
	"coursecat/internal/adapters/tui"
	"coursecat/internal/adapters/tui/styles"
	"coursecat/internal/catalog"
	"coursecat/internal/config"
	"coursecat/internal/ports"
)

func main() {
	fileFlag := flag.String("file", config.CatalogFile(), "catalog file to load on start")
	flag.Parse()

	if err := run(*fileFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fileName string) error {
	styles.Apply(styles.PaletteByName(config.ThemeName()))
	styles.UseFrame(styles.FrameByName(config.FrameName()))

	logger, closeLog, err := newLogger(config.LogFile())
	if err != nil {
		return err
	}
	defer closeLog()

	resolver := filesystem.NewResolver(config.SearchDepth())
	newCatalog := func() ports.CourseCatalog { return catalog.New(resolver) }

	return tui.Run(newCatalog, fileName, editor.NewOpener(config.Editor()), logger)
}

// newLogger logs to path, or nowhere when path is empty.
// The alt screen owns stdout, so there is no terminal fallback.
func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, "coursecat")
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: config.LogLevel()})), f.Close, nil
}
