package domain

import (
	"regexp"
	"strings"
)

// courseIDRegex matches a normalized course ID: letters followed by digits (e.g. CSCI200)
var courseIDRegex = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// rawCourseIDRegex matches an ID before uppercasing. It is checked first
// because Unicode case mapping turns some non-ASCII letters into ASCII
// ("ſ" -> "S", "ı" -> "I").
var rawCourseIDRegex = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)

// IsValidCourseID reports whether id is a normalized course ID.
// Callers uppercase the value first; lowercase letters are rejected here.
func IsValidCourseID(id string) bool {
	return courseIDRegex.MatchString(id)
}

// NormalizeCourseID trims raw, validates it as ASCII letters then digits in
// either case, and uppercases it. Returns the normalized ID and whether it
// satisfies the grammar.
func NormalizeCourseID(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	id := strings.ToUpper(trimmed)
	return id, rawCourseIDRegex.MatchString(trimmed)
}

// LookupID is a course ID recovered from free-form user input
type LookupID struct {
	ID       string
	Adjusted bool // true when characters were dropped from the cleaned input
}

// ParseLookupID cleans user input for a course lookup.
// It keeps the leading letters, then the digits that follow, and stops at the
// first character that breaks that shape.
// e.g. "csci200, Intro" -> CSCI200 (adjusted), "math201" -> MATH201
func ParseLookupID(input string) (LookupID, bool) {
	cleaned := strings.TrimSpace(input)
	if strings.HasSuffix(cleaned, ",") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, ","))
	}
	if cleaned == "" {
		return LookupID{}, false
	}

	var b strings.Builder
	seenDigit := false
	for _, r := range cleaned {
		if isASCIILetter(r) {
			if seenDigit {
				break
			}
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			seenDigit = true
			b.WriteRune(r)
			continue
		}
		break
	}

	kept := b.String()
	id, ok := NormalizeCourseID(kept)
	if !ok {
		return LookupID{}, false
	}
	return LookupID{ID: id, Adjusted: kept != cleaned}, true
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
