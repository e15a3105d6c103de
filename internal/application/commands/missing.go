package commands

import (
	"context"
	"slices"

	"coursecat/internal/application"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// MissingPrerequisitesCommand reports prerequisites that no loaded course defines
type MissingPrerequisitesCommand struct {
	catalog ports.CourseCatalog
}

// NewMissingPrerequisitesCommand creates a new MissingPrerequisitesCommand
func NewMissingPrerequisitesCommand(catalog ports.CourseCatalog) *MissingPrerequisitesCommand {
	return &MissingPrerequisitesCommand{catalog: catalog}
}

// Execute returns sorted, unique "<prereq> (referenced by <course>)" descriptors.
// An empty slice means every prerequisite resolved.
func (c *MissingPrerequisitesCommand) Execute(ctx context.Context) ([]string, error) {
	ids := c.catalog.IDs()
	if len(ids) == 0 {
		return nil, application.ErrNotLoaded
	}

	missing := []string{}
	for _, id := range ids {
		course, ok := c.catalog.Get(id)
		if !ok {
			continue
		}
		for _, prereq := range course.Prerequisites {
			if _, found := c.catalog.Get(prereq); found {
				continue
			}
			missing = append(missing, domain.MissingPrerequisite(prereq, id))
		}
	}
	slices.Sort(missing)
	return slices.Compact(missing), nil
}
