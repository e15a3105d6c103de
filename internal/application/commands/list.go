package commands

import (
	"context"

	"coursecat/internal/application"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// ListCoursesCommand lists every loaded course in ID order
type ListCoursesCommand struct {
	catalog ports.CourseCatalog
}

// NewListCoursesCommand creates a new ListCoursesCommand
func NewListCoursesCommand(catalog ports.CourseCatalog) *ListCoursesCommand {
	return &ListCoursesCommand{catalog: catalog}
}

// Execute runs the list courses command
func (c *ListCoursesCommand) Execute(ctx context.Context) ([]domain.Course, error) {
	ids := c.catalog.IDs()
	if len(ids) == 0 {
		return nil, application.ErrNotLoaded
	}

	courses := make([]domain.Course, 0, len(ids))
	for _, id := range ids {
		course, ok := c.catalog.Get(id)
		if !ok {
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}
