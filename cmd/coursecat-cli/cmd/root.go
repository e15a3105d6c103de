package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"coursecat/internal/adapters/console"
	"coursecat/internal/adapters/filesystem"
	"coursecat/internal/adapters/tui/styles"
	"coursecat/internal/application/commands"
	"coursecat/internal/catalog"
	"coursecat/internal/config"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

var (
	catalogFile string
	searchDepth int
	accessible  bool

	resolver *filesystem.Resolver
	cat      ports.CourseCatalog
	printer  *console.Printer
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "coursecat-cli",
	Short: "Browse a course catalog from the command line",
	Long: `coursecat-cli loads a CSV course catalog and answers questions about it.

Each line of the catalog holds a course ID, a course name, and the IDs of
its prerequisites. Relative file names are also looked up in the parent
directories of the working directory.

Run without a subcommand to open the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		styles.Apply(styles.PaletteByName(config.ThemeName()))
		styles.UseFrame(styles.FrameByName(config.FrameName()))

		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel()}))
		resolver = filesystem.NewResolver(searchDepth)
		cat = newCatalog()
		printer = console.NewPrinter(cmd.OutOrStdout(), styles.ActiveFrame())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "file", "f", config.CatalogFile(), "catalog file to load")
	rootCmd.PersistentFlags().IntVar(&searchDepth, "search-depth", config.SearchDepth(), "directories probed when resolving a relative catalog file")
	rootCmd.PersistentFlags().BoolVar(&accessible, "accessible", os.Getenv("ACCESSIBLE") != "", "use plain prompts and no spinner animation")
}

func newCatalog() ports.CourseCatalog {
	return catalog.New(resolver)
}

// loadCatalog loads the --file catalog behind a spinner. Problems are printed
// only when verbose is set or the load fails.
func loadCatalog(ctx context.Context, verbose bool) (domain.LoadResult, error) {
	var (
		result  domain.LoadResult
		loadErr error
	)
	spinErr := spinner.New().
		Title("Loading " + catalogFile + "...").
		Accessible(accessible).
		Context(ctx).
		Action(func() {
			result, loadErr = commands.NewLoadCatalogCommand(cat, catalogFile, logger).Execute(ctx)
		}).
		Run()
	if spinErr != nil {
		return result, spinErr
	}

	if verbose || loadErr != nil {
		printer.LoadResult(catalogFile, result)
	}
	return result, loadErr
}
