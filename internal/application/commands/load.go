package commands

import (
	"context"
	"log/slog"

	"coursecat/internal/application"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// LoadCatalogCommand loads a catalog file into a catalog instance
type LoadCatalogCommand struct {
	catalog  ports.CourseCatalog
	logger   *slog.Logger
	FileName string
}

// NewLoadCatalogCommand creates a new LoadCatalogCommand.
// A nil logger falls back to slog.Default().
func NewLoadCatalogCommand(catalog ports.CourseCatalog, fileName string, logger *slog.Logger) *LoadCatalogCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadCatalogCommand{
		catalog:  catalog,
		logger:   logger,
		FileName: fileName,
	}
}

// Execute runs the load. The report is always returned; the error is a
// *application.LoadError when the catalog was left unchanged.
func (c *LoadCatalogCommand) Execute(ctx context.Context) (domain.LoadResult, error) {
	result := c.catalog.Load(c.FileName)

	for _, w := range result.Warnings {
		c.logger.DebugContext(ctx, "catalog warning", "path", result.Path, "warning", w)
	}

	if !result.OK {
		c.logger.WarnContext(ctx, "catalog load failed",
			"file", c.FileName,
			"path", result.Path,
			"warnings", len(result.Warnings),
		)
		return result, &application.LoadError{
			Path:     result.Path,
			Warnings: result.Warnings,
		}
	}

	c.logger.InfoContext(ctx, "catalog loaded",
		"path", result.Path,
		"courses", result.Courses,
		"warnings", len(result.Warnings),
		"missing_prerequisites", len(result.MissingPrerequisites),
	)
	return result, nil
}
