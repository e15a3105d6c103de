package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"coursecat/internal/application/commands"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// RegisterReadTools adds the catalog query tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, session *Session) {
	s.AddTool(listCoursesTool(), listCoursesHandler(session))
	s.AddTool(getCourseTool(), getCourseHandler(session))
	s.AddTool(missingPrerequisitesTool(), missingPrerequisitesHandler(session))
}

// --- list_courses ---

func listCoursesTool() mcp.Tool {
	return mcp.NewTool("list_courses",
		mcp.WithDescription("List every loaded course as \"ID, Name\" in ascending ID order."),
	)
}

func listCoursesHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var courses []domain.Course
		err := session.View(func(c ports.CourseCatalog) error {
			var err error
			courses, err = commands.NewListCoursesCommand(c).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, course := range courses {
			fmt.Fprintf(&sb, "%s, %s\n", course.ID, course.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_course ---

func getCourseTool() mcp.Tool {
	return mcp.NewTool("get_course",
		mcp.WithDescription("Show one course with the titles of its prerequisites. Lookup is by exact course ID; case and a pasted trailing name are tolerated."),
		mcp.WithString("id",
			mcp.Description("Course ID (e.g. CSCI300)"),
			mcp.Required(),
		),
	)
}

func getCourseHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		var details *commands.CourseDetails
		err := session.View(func(c ports.CourseCatalog) error {
			var err error
			details, err = commands.NewFindCourseCommand(c, id).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(formatCourseDetails(details)), nil
	}
}

func formatCourseDetails(d *commands.CourseDetails) string {
	var sb strings.Builder
	if d.Adjusted {
		fmt.Fprintf(&sb, "Searching for course: %s\n", d.LookupID)
	}
	fmt.Fprintf(&sb, "%s, %s\n", d.Course.ID, d.Course.Name)

	if len(d.Prerequisites) == 0 {
		sb.WriteString("Prerequisites: none\n")
		return sb.String()
	}
	sb.WriteString("Prerequisites:\n")
	for _, p := range d.Prerequisites {
		if p.Missing {
			fmt.Fprintf(&sb, "  %s - (missing from catalog)\n", p.ID)
			continue
		}
		fmt.Fprintf(&sb, "  %s - %s\n", p.ID, p.Name)
	}
	return sb.String()
}

// --- missing_prerequisites ---

func missingPrerequisitesTool() mcp.Tool {
	return mcp.NewTool("missing_prerequisites",
		mcp.WithDescription("List prerequisites that are referenced by a course but not defined in the loaded catalog."),
	)
}

func missingPrerequisitesHandler(session *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var missing []string
		err := session.View(func(c ports.CourseCatalog) error {
			var err error
			missing, err = commands.NewMissingPrerequisitesCommand(c).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		if len(missing) == 0 {
			return mcp.NewToolResultText("All prerequisites found in the loaded catalog."), nil
		}
		return mcp.NewToolResultText(strings.Join(missing, "\n") + "\n"), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
