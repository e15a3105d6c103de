package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"coursecat/internal/domain"
)

// cutset trimmed from every line and field
const cutset = " \t\r\n"

// maxLineSize bounds a single CSV line; longer lines fail the read
const maxLineSize = 1 << 20

type parseResult struct {
	courses  map[string]domain.Course
	warnings []string
}

// parse reads course rows from r. Row-level problems become warnings;
// only a failing reader returns an error.
func parse(r io.Reader) (*parseResult, error) {
	res := &parseResult{courses: make(map[string]domain.Course)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.Trim(scanner.Text(), cutset)
		if line == "" {
			continue
		}

		course, ok := res.parseLine(lineNumber, line)
		if !ok {
			continue
		}

		if _, exists := res.courses[course.ID]; exists {
			res.warn("Replacing existing course entry for %s.", course.ID)
		}
		res.courses[course.ID] = course
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

// parseLine turns one non-blank line into a course.
// Returns false when the whole line has to be skipped.
func (res *parseResult) parseLine(lineNumber int, line string) (domain.Course, bool) {
	fields := strings.Split(line, ",")
	// A trailing delimiter closes the last field rather than opening an empty one
	if strings.HasSuffix(line, ",") {
		fields = fields[:len(fields)-1]
	}
	for i := range fields {
		fields[i] = strings.Trim(fields[i], cutset)
	}

	if len(fields) < 2 {
		res.warn("Skipping line %d: expected course ID and name.", lineNumber)
		return domain.Course{}, false
	}

	id, ok := domain.NormalizeCourseID(fields[0])
	if !ok {
		res.warn("Skipping line %d: invalid course ID '%s'.", lineNumber, fields[0])
		return domain.Course{}, false
	}

	course := domain.Course{ID: id, Name: fields[1]}

	seen := make(map[string]bool)
	for _, field := range fields[2:] {
		if field == "" {
			continue
		}
		prereq, ok := domain.NormalizeCourseID(field)
		if !ok {
			res.warn("Skipping invalid prerequisite '%s' for course %s.", field, id)
			continue
		}
		if seen[prereq] {
			res.warn("Duplicate prerequisite '%s' ignored for course %s.", prereq, id)
			continue
		}
		seen[prereq] = true
		course.Prerequisites = append(course.Prerequisites, prereq)
	}

	return course, true
}

func (res *parseResult) warn(format string, args ...any) {
	res.warnings = append(res.warnings, fmt.Sprintf(format, args...))
}
