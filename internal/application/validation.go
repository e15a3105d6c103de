package application

import (
	"fmt"
	"strings"

	"coursecat/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "courseID" -> "course ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"courseID": "course ID",
		"fileName": "file name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ParseCourseInput turns free-form lookup input into a course ID.
// Returns a ValidationError when no letters-then-digits ID can be recovered.
func ParseCourseInput(input string) (domain.LookupID, error) {
	if err := ValidateRequired("courseID", input); err != nil {
		return domain.LookupID{}, err
	}

	id, ok := domain.ParseLookupID(input)
	if !ok {
		return domain.LookupID{}, &ValidationError{
			Field:   "courseID",
			Message: "course number must start with letters and end with digits",
		}
	}
	return id, nil
}

// CleanFileName trims a file name typed at a prompt and drops one trailing comma,
// which shows up when a name is pasted from CSV output.
// Reports whether a comma was dropped.
func CleanFileName(input string) (string, bool) {
	name := strings.TrimSpace(input)
	if !strings.HasSuffix(name, ",") {
		return name, false
	}
	return strings.TrimSpace(strings.TrimSuffix(name, ",")), true
}
