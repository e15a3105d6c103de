package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"coursecat/internal/adapters/editor"
	"coursecat/internal/adapters/menu"
	"coursecat/internal/adapters/tui"
	"coursecat/internal/config"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive course advisor menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd.Context())
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the full-screen dashboard on the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(catalogFile)
	},
}

func runMenu(ctx context.Context) error {
	prompt := menu.NewHuhPrompter(os.Stdin, os.Stdout, accessible, true)
	m := menu.New(cat, printer, prompt, menu.Config{
		DefaultFile: catalogFile,
		Dashboard:   runDashboard,
		Logger:      logger,
	})
	return m.Run(ctx)
}

// runDashboard takes over the terminal, so it logs nowhere
func runDashboard(path string) error {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tui.Run(newCatalog, path, editor.NewOpener(config.Editor()), quiet)
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(dashboardCmd)
}
