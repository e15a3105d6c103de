// Package catalog loads a course CSV file into an in-memory directory with a
// sorted ID index and answers exact-ID lookups against it.
//
// A Catalog is owned by a single caller and has no internal locking. Load
// builds the new directory and index on the side and swaps both in only when
// the file produced at least one valid course, so a failed load never leaves
// the catalog half-updated.
package catalog

import (
	"fmt"
	"os"
	"slices"

	"coursecat/internal/adapters/filesystem"
	"coursecat/internal/config"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// Catalog implements ports.CourseCatalog
type Catalog struct {
	resolver  ports.PathResolver
	courses   map[string]domain.Course
	sortedIDs []string
}

// Ensure Catalog implements CourseCatalog
var _ ports.CourseCatalog = (*Catalog)(nil)

// New creates an empty catalog. A nil resolver uses the filesystem resolver
// with the default ancestor search depth.
func New(resolver ports.PathResolver) *Catalog {
	if resolver == nil {
		resolver = filesystem.NewResolver(config.DefaultSearchDepth)
	}
	return &Catalog{
		resolver: resolver,
		courses:  make(map[string]domain.Course),
	}
}

// Load reads fileName, validates every row and replaces the catalog contents.
// Malformed content degrades to warnings; only an unresolvable, unreadable or
// course-less file reports OK == false, and then the catalog is left as it was.
func (c *Catalog) Load(fileName string) domain.LoadResult {
	var result domain.LoadResult
	if fileName == "" {
		result.Warnings = append(result.Warnings, "File name is empty.")
		return result
	}

	path, ok := c.resolver.Resolve(fileName)
	if !ok {
		result.Warnings = append(result.Warnings, "Unable to locate file: "+fileName)
		result.Path = fileName
		return result
	}
	result.Path = path

	f, err := os.Open(path)
	if err != nil {
		result.Warnings = append(result.Warnings, "Unable to open file: "+path)
		return result
	}
	defer f.Close()

	parsed, err := parse(f)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unable to read file: %s: %v", path, err))
		return result
	}

	result.Warnings = append(result.Warnings, parsed.warnings...)
	if len(parsed.courses) == 0 {
		return result
	}

	sortedIDs := make([]string, 0, len(parsed.courses))
	for id := range parsed.courses {
		sortedIDs = append(sortedIDs, id)
	}
	slices.Sort(sortedIDs)

	result.OK = true
	result.Courses = len(parsed.courses)
	result.MissingPrerequisites = missingPrerequisites(parsed.courses)

	c.courses = parsed.courses
	c.sortedIDs = sortedIDs

	return result
}

// Get returns a copy of the course stored under id
func (c *Catalog) Get(id string) (domain.Course, bool) {
	course, ok := c.courses[id]
	if !ok {
		return domain.Course{}, false
	}
	return course.Clone(), true
}

// IDs returns a copy of the sorted course ID index
func (c *Catalog) IDs() []string {
	return slices.Clone(c.sortedIDs)
}

// missingPrerequisites lists prerequisites that no course in the directory
// defines, as sorted unique descriptors
func missingPrerequisites(courses map[string]domain.Course) []string {
	seen := make(map[string]bool)
	var missing []string
	for id, course := range courses {
		for _, prereq := range course.Prerequisites {
			if _, ok := courses[prereq]; ok {
				continue
			}
			descriptor := domain.MissingPrerequisite(prereq, id)
			if seen[descriptor] {
				continue
			}
			seen[descriptor] = true
			missing = append(missing, descriptor)
		}
	}
	slices.Sort(missing)
	return missing
}
