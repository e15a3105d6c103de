// Package console prints catalog output for line-oriented terminals using the
// shared lipgloss palette and frame.
package console

import (
	"fmt"
	"io"

	"coursecat/internal/adapters/tui/styles"
	"coursecat/internal/application/commands"
	"coursecat/internal/domain"
)

// Printer writes styled catalog output to out
type Printer struct {
	out   io.Writer
	frame styles.Frame
}

// NewPrinter creates a printer drawing boxes with frame
func NewPrinter(out io.Writer, frame styles.Frame) *Printer {
	return &Printer{out: out, frame: frame}
}

func (p *Printer) line(text string) {
	fmt.Fprintln(p.out, text)
}

// Info prints an informational line
func (p *Printer) Info(msg string) { p.line(styles.Info.Render(msg)) }

// Success prints a success line
func (p *Printer) Success(msg string) { p.line(styles.Success.Render(msg)) }

// Warn prints a warning line
func (p *Printer) Warn(msg string) { p.line(styles.Warning.Render(msg)) }

// Error prints an error line
func (p *Printer) Error(msg string) { p.line(styles.ErrorMsg.Render(msg)) }

// Framed prints lines inside the frame under title
func (p *Printer) Framed(title string, lines ...string) {
	p.line(p.frame.Render(title, lines...))
}

// LoadResult prints the outcome of loading fileName: the resolved path and
// counts, every warning, and the missing-prerequisite summary.
func (p *Printer) LoadResult(fileName string, r domain.LoadResult) {
	if !r.OK {
		for _, w := range r.Warnings {
			p.Error(w)
		}
		p.Warn("No courses were loaded from " + fileName)
		return
	}

	p.Success(fmt.Sprintf("Loaded %d courses from %s", r.Courses, r.Path))
	for _, w := range r.Warnings {
		p.Warn(w)
	}
	p.MissingPrerequisites(r.MissingPrerequisites)
	p.Success("Courses have been loaded!")
}

// MissingPrerequisites prints one line per missing prerequisite descriptor
func (p *Printer) MissingPrerequisites(missing []string) {
	if len(missing) == 0 {
		p.Success("All prerequisites found in the loaded catalog.")
		return
	}
	for _, m := range missing {
		p.Warn("Prerequisite missing from catalog: " + m)
	}
}

// CourseList prints courses as "ID, Name" lines inside the frame
func (p *Printer) CourseList(courses []domain.Course) {
	if len(courses) == 0 {
		p.Warn("No courses available to display.")
		return
	}

	lines := make([]string, 0, len(courses)+1)
	lines = append(lines, "")
	for _, c := range courses {
		lines = append(lines, styles.CourseName.Render(c.ID+", "+c.Name))
	}
	p.Framed("Course List", lines...)
}

// CourseDetails prints a course with the titles of its prerequisites
func (p *Printer) CourseDetails(d *commands.CourseDetails) {
	if d.Adjusted {
		p.Info("Searching for course: " + d.LookupID)
	}
	p.line(styles.Title.UnsetMarginBottom().Render(d.Course.ID) + ", " + d.Course.Name)

	if len(d.Prerequisites) == 0 {
		p.Info("Prerequisites: none")
		return
	}

	p.line(styles.Subtitle.UnsetItalic().Render("Prerequisites:"))
	for _, prereq := range d.Prerequisites {
		name := prereq.Name
		if prereq.Missing {
			name = styles.Warning.Render("(missing from catalog)")
		}
		p.line("  " + styles.CourseID.Render(prereq.ID) + " - " + name)
	}
}
