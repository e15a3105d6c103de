package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"coursecat/internal/domain"
)

// RegisterWriteTools adds the tools that replace the session catalog.
func RegisterWriteTools(s *server.MCPServer, session *Session) {
	s.AddTool(loadCatalogTool(), loadCatalogHandler(session))
	s.AddTool(loadReportTool(), loadReportHandler(session))
}

// --- load_catalog ---

func loadCatalogTool() mcp.Tool {
	return mcp.NewTool("load_catalog",
		mcp.WithDescription("Load a course CSV file, replacing the current catalog. Relative names are also searched in parent directories. A failed load keeps the previous catalog."),
		mcp.WithString("file",
			mcp.Description("Path to the course file. Omit to load the server's default file."),
		),
	)
}

func loadCatalogHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := strings.TrimSpace(req.GetString("file", ""))

		result, err := session.Load(ctx, file)
		if err != nil {
			return mcp.NewToolResultError(formatLoadResult(result)), nil
		}
		return mcp.NewToolResultText(formatLoadResult(result)), nil
	}
}

// --- load_report ---

func loadReportTool() mcp.Tool {
	return mcp.NewTool("load_report",
		mcp.WithDescription("Show the warnings and missing prerequisites of the most recent load."),
	)
}

func loadReportHandler(session *Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := session.LastResult()
		if result.Path == "" && len(result.Warnings) == 0 {
			return mcp.NewToolResultText("No file has been loaded yet."), nil
		}
		return mcp.NewToolResultText(formatLoadResult(result)), nil
	}
}

func formatLoadResult(r domain.LoadResult) string {
	var sb strings.Builder
	if r.OK {
		fmt.Fprintf(&sb, "Loaded %d courses from %s\n", r.Courses, r.Path)
	} else {
		sb.WriteString("No courses were loaded")
		if r.Path != "" {
			fmt.Fprintf(&sb, " from %s", r.Path)
		}
		sb.WriteString(". The previous catalog is unchanged.\n")
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&sb, "\nWarnings (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Fprintf(&sb, "  %s\n", w)
		}
	}

	if r.OK && len(r.MissingPrerequisites) > 0 {
		fmt.Fprintf(&sb, "\nMissing prerequisites (%d):\n", len(r.MissingPrerequisites))
		for _, m := range r.MissingPrerequisites {
			fmt.Fprintf(&sb, "  %s\n", m)
		}
	}
	return sb.String()
}
