package menu

import (
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"

	"coursecat/internal/adapters/tui/styles"
)

// HuhPrompter asks for input with huh forms
type HuhPrompter struct {
	theme      *huh.Theme
	accessible bool
	in         io.Reader
	out        io.Writer
	dashboard  bool
}

// NewHuhPrompter creates a prompter themed from the active palette.
// Accessible mode swaps the forms for plain line prompts read from in.
func NewHuhPrompter(in io.Reader, out io.Writer, accessible, dashboard bool) *HuhPrompter {
	return &HuhPrompter{
		theme:      Theme(styles.Active()),
		accessible: accessible,
		in:         in,
		out:        out,
		dashboard:  dashboard,
	}
}

// Theme builds a huh theme from p
func Theme(p styles.Palette) *huh.Theme {
	if p == styles.PlainPalette {
		return huh.ThemeBase()
	}

	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(p.Title).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p.Prompt)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p.Number)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p.Prompt)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p.Prompt)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.Error)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p.Accent)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	return t
}

func (h *HuhPrompter) run(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(h.theme).
		WithAccessible(h.accessible).
		WithInput(h.in).
		WithOutput(h.out).
		Run()
}

// Choose shows the numbered menu
func (h *HuhPrompter) Choose() (Action, error) {
	options := []huh.Option[Action]{
		huh.NewOption("1. Load the courses from the file", ActionLoad),
		huh.NewOption("2. Print Computer Science course list in alphanumeric order", ActionPrint),
		huh.NewOption("3. Find a course by the course number", ActionFind),
	}
	if h.dashboard {
		options = append(options, huh.NewOption("4. Launch dashboard", ActionDashboard))
	}
	options = append(options, huh.NewOption("9. Exit", ActionExit))

	var action Action
	err := h.run(
		huh.NewSelect[Action]().
			Title("Course Advisor Menu").
			Options(options...).
			Value(&action),
	)
	return action, err
}

// FileName asks for a catalog file
func (h *HuhPrompter) FileName(defaultFile string) (string, error) {
	var name string
	err := h.run(
		huh.NewInput().
			Title("Enter file name:").
			Description("Leave empty to use the default catalog.").
			Placeholder(defaultFile).
			Value(&name),
	)
	return name, err
}

// CourseNumber asks for a course to look up
func (h *HuhPrompter) CourseNumber() (string, error) {
	var input string
	err := h.run(
		huh.NewInput().
			Title("Enter the course number:").
			Placeholder("CSCI200").
			Value(&input),
	)
	return input, err
}

// Spin runs action behind a huh spinner
func (h *HuhPrompter) Spin(title string, action func()) error {
	return spinner.New().
		Title(title).
		Accessible(h.accessible).
		Action(action).
		Run()
}

// Pause waits for the user to continue
func (h *HuhPrompter) Pause() error {
	return h.run(
		huh.NewNote().
			Title("Press Enter to continue...").
			Next(true).
			NextLabel("Continue"),
	)
}
