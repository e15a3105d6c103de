package commands

import (
	"context"

	"coursecat/internal/application"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// PrerequisiteInfo is a prerequisite ID with its resolved title
type PrerequisiteInfo struct {
	ID      string
	Name    string // empty when Missing
	Missing bool   // true when the catalog has no course with this ID
}

// CourseDetails contains a course with its prerequisites resolved against the catalog
type CourseDetails struct {
	Course        domain.Course
	Prerequisites []PrerequisiteInfo
	LookupID      string // the ID actually searched for
	Adjusted      bool   // true when the input had to be trimmed to form LookupID
}

// FindCourseCommand looks up one course by user-supplied ID
type FindCourseCommand struct {
	catalog ports.CourseCatalog
	Input   string
}

// NewFindCourseCommand creates a new FindCourseCommand
func NewFindCourseCommand(catalog ports.CourseCatalog, input string) *FindCourseCommand {
	return &FindCourseCommand{
		catalog: catalog,
		Input:   input,
	}
}

// Execute runs the find course command
func (c *FindCourseCommand) Execute(ctx context.Context) (*CourseDetails, error) {
	lookup, err := application.ParseCourseInput(c.Input)
	if err != nil {
		return nil, err
	}

	if len(c.catalog.IDs()) == 0 {
		return nil, application.ErrNotLoaded
	}

	course, ok := c.catalog.Get(lookup.ID)
	if !ok {
		return nil, &application.NotFoundError{ID: lookup.ID}
	}

	return &CourseDetails{
		Course:        course,
		Prerequisites: ResolvePrerequisites(c.catalog, course),
		LookupID:      lookup.ID,
		Adjusted:      lookup.Adjusted,
	}, nil
}

// ResolvePrerequisites looks up the title of each prerequisite of course
func ResolvePrerequisites(catalog ports.CourseCatalog, course domain.Course) []PrerequisiteInfo {
	infos := make([]PrerequisiteInfo, 0, len(course.Prerequisites))
	for _, id := range course.Prerequisites {
		prereq, ok := catalog.Get(id)
		if !ok {
			infos = append(infos, PrerequisiteInfo{ID: id, Missing: true})
			continue
		}
		infos = append(infos, PrerequisiteInfo{ID: id, Name: prereq.Name})
	}
	return infos
}
