package domain

import (
	"fmt"
	"slices"
)

// Course represents a single catalog entry (e.g., CSCI300 Introduction to Algorithms)
type Course struct {
	ID            string   // e.g., "CSCI300"
	Name          string   // e.g., "Introduction to Algorithms"
	Prerequisites []string // e.g., ["CSCI200", "MATH201"], in source order
}

// Clone returns a copy that shares no memory with c
func (c Course) Clone() Course {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	return c
}

// LoadResult describes the outcome of one catalog load attempt
type LoadResult struct {
	OK                   bool
	Courses              int
	Warnings             []string
	MissingPrerequisites []string // "<prereq> (referenced by <course>)", sorted
	Path                 string   // Resolved absolute path, or the requested name when unresolved
}

// MissingPrerequisite formats the descriptor for a prerequisite that no course defines
func MissingPrerequisite(prereqID, courseID string) string {
	return fmt.Sprintf("%s (referenced by %s)", prereqID, courseID)
}
