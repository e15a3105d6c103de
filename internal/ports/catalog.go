package ports

import "coursecat/internal/domain"

// CourseCatalog defines the query surface presentation layers use.
// Implementations are not safe for concurrent use; each caller owns its instance.
type CourseCatalog interface {
	// Load replaces the catalog with the contents of fileName.
	// A failed load leaves the previous contents untouched.
	Load(fileName string) domain.LoadResult

	// Get looks up a course by its normalized ID (case-sensitive)
	Get(id string) (domain.Course, bool)

	// IDs returns a snapshot of all course IDs in ascending order
	IDs() []string
}

// PathResolver locates a catalog file on disk
type PathResolver interface {
	// Resolve returns the absolute path for fileName, or false when no candidate exists
	Resolve(fileName string) (string, bool)
}
