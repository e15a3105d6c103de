package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidID  = errors.New("invalid ID")
	ErrNotLoaded  = errors.New("no catalog loaded")
	ErrLoadFailed = errors.New("load failed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets callers match course ID validation failures with ErrInvalidID
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidID && e.Field == "courseID"
}

// NotFoundError reports a course ID with no catalog entry
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course not found: %s", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LoadError represents a catalog load that did not replace the catalog
type LoadError struct {
	Path     string
	Warnings []string
}

func (e *LoadError) Error() string {
	if len(e.Warnings) == 0 {
		return fmt.Sprintf("no courses were loaded from %s", e.Path)
	}
	return fmt.Sprintf("no courses were loaded from %s: %s", e.Path, strings.Join(e.Warnings, "; "))
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}
