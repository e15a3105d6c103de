// Package menu implements the numbered course advisor menu on top of huh forms.
package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/huh"

	"coursecat/internal/adapters/console"
	"coursecat/internal/application"
	"coursecat/internal/application/commands"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// Action is a menu entry
type Action string

const (
	ActionLoad      Action = "load"
	ActionPrint     Action = "print"
	ActionFind      Action = "find"
	ActionDashboard Action = "dashboard"
	ActionExit      Action = "exit"
)

// Prompter collects input from the user
type Prompter interface {
	// Choose shows the menu and returns the selected action
	Choose() (Action, error)
	// FileName asks for a catalog file; defaultFile is shown as a hint
	FileName(defaultFile string) (string, error)
	// CourseNumber asks for a course to look up
	CourseNumber() (string, error)
	// Spin runs action while showing title
	Spin(title string, action func()) error
	// Pause waits for the user before the menu redraws
	Pause() error
}

// Config holds the optional menu collaborators
type Config struct {
	DefaultFile string
	// Dashboard launches the dashboard for the given catalog path; nil hides it
	Dashboard func(path string) error
	Logger    *slog.Logger
}

// Menu runs the interactive loop against one catalog
type Menu struct {
	catalog ports.CourseCatalog
	printer *console.Printer
	prompt  Prompter
	cfg     Config
	path    string
}

// New creates a menu
func New(catalog ports.CourseCatalog, printer *console.Printer, prompt Prompter, cfg Config) *Menu {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Menu{
		catalog: catalog,
		printer: printer,
		prompt:  prompt,
		cfg:     cfg,
	}
}

// Run shows the menu until the user exits or aborts
func (m *Menu) Run(ctx context.Context) error {
	for {
		action, err := m.prompt.Choose()
		if errors.Is(err, huh.ErrUserAborted) {
			m.printer.Info("Input closed. Exiting.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}

		switch action {
		case ActionLoad:
			err = m.load(ctx)
		case ActionPrint:
			err = m.printCourses(ctx)
		case ActionFind:
			err = m.findCourse(ctx)
		case ActionDashboard:
			m.launchDashboard()
		case ActionExit:
			m.printer.Success("Goodbye.")
			return nil
		default:
			m.printer.Error(fmt.Sprintf("Unknown option: %s", action))
		}

		if errors.Is(err, huh.ErrUserAborted) {
			m.printer.Info("Input closed. Exiting.")
			return nil
		}
		if err != nil {
			return err
		}

		if err := m.prompt.Pause(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("waiting for input: %w", err)
		}
	}
}

func (m *Menu) load(ctx context.Context) error {
	input, err := m.prompt.FileName(m.cfg.DefaultFile)
	if err != nil {
		return err
	}

	fileName, dropped := application.CleanFileName(input)
	if dropped {
		m.printer.Warn("Ignoring trailing comma in file name input.")
	}
	if fileName == "" {
		m.printer.Info("Using default catalog file: " + m.cfg.DefaultFile)
		fileName = m.cfg.DefaultFile
	}

	var (
		result  domain.LoadResult
		loadErr error
	)
	spinErr := m.prompt.Spin("Loading "+fileName+"...", func() {
		result, loadErr = commands.NewLoadCatalogCommand(m.catalog, fileName, m.cfg.Logger).Execute(ctx)
	})
	if spinErr != nil {
		return spinErr
	}

	m.printer.LoadResult(fileName, result)
	if loadErr == nil {
		m.path = result.Path
	}
	return nil
}

func (m *Menu) printCourses(ctx context.Context) error {
	courses, err := commands.NewListCoursesCommand(m.catalog).Execute(ctx)
	if errors.Is(err, application.ErrNotLoaded) {
		m.printer.Warn("Please load courses first (option 1).")
		return nil
	}
	if err != nil {
		return err
	}
	m.printer.CourseList(courses)
	return nil
}

func (m *Menu) findCourse(ctx context.Context) error {
	if len(m.catalog.IDs()) == 0 {
		m.printer.Warn("Please load courses first (option 1).")
		return nil
	}

	input, err := m.prompt.CourseNumber()
	if err != nil {
		return err
	}

	details, err := commands.NewFindCourseCommand(m.catalog, input).Execute(ctx)
	var notFound *application.NotFoundError
	switch {
	case err == nil:
		m.printer.CourseDetails(details)
	case errors.Is(err, application.ErrInvalidID):
		m.printer.Error("Course number must start with letters and end with digits.")
	case errors.As(err, &notFound):
		if lookup, ok := domain.ParseLookupID(input); ok && lookup.Adjusted {
			m.printer.Info("Searching for course: " + lookup.ID)
		}
		m.printer.Error("Course not found: " + notFound.ID)
	default:
		return err
	}
	return nil
}

func (m *Menu) launchDashboard() {
	if m.cfg.Dashboard == nil {
		m.printer.Warn("Dashboard is not available.")
		return
	}
	if err := m.cfg.Dashboard(m.path); err != nil {
		m.printer.Warn(fmt.Sprintf("Dashboard exited: %v", err))
	}
}
