package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coursecat/internal/adapters/tui/styles"
	"coursecat/internal/application/commands"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// BrowserKeyMap defines key bindings for the course browser
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Load     key.Binding
	Report   key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Load: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open file"),
	),
	Report: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "load report"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy ID"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit file"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// listWidth is the width of the course list column
const listWidth = 46

// BrowserModel lists the loaded courses next to a detail pane for the selection
type BrowserModel struct {
	ViewState
	catalog   ports.CourseCatalog
	ids       []string
	path      string
	paginator *Paginator
}

// NewBrowserModel creates a browser with no catalog
func NewBrowserModel() *BrowserModel {
	return &BrowserModel{
		paginator: NewPaginator(defaultPageSize),
	}
}

// SetCatalog shows the courses of catalog, loaded from path.
// The cursor stays put when possible so a reload does not lose the selection.
func (m *BrowserModel) SetCatalog(catalog ports.CourseCatalog, path string) {
	m.catalog = catalog
	m.path = path
	m.ids = catalog.IDs()
	m.paginator.SetTotal(len(m.ids))
}

// Path returns the file the current catalog was loaded from
func (m *BrowserModel) Path() string {
	return m.path
}

// Selected returns the course under the cursor
func (m *BrowserModel) Selected() (domain.Course, bool) {
	if m.catalog == nil || len(m.ids) == 0 {
		return domain.Course{}, false
	}
	return m.catalog.Get(m.ids[m.paginator.Cursor()])
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.NextPage):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Load):
			return m, func() tea.Msg { return SwitchToLoadMsg{} }

		case key.Matches(msg, BrowserKeys.Report):
			return m, func() tea.Msg { return SwitchToReportMsg{} }

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, BrowserKeys.Copy):
			m.copySelected()
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if m.path == "" {
				m.SetMessage("No catalog file to edit", MessageWarning)
				return m, nil
			}
			path := m.path
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}
	}

	return m, nil
}

func (m *BrowserModel) copySelected() {
	course, ok := m.Selected()
	if !ok {
		m.SetMessage("Nothing to copy", MessageWarning)
		return
	}
	if err := copyToClipboard(course.ID); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), MessageError)
		return
	}
	m.SetMessage("Copied "+course.ID, MessageSuccess)
}

// SetSize updates the view dimensions and fits the page to the window
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, subtitle, page label, message and help lines plus app padding
	if rows := height - 10; rows > 0 {
		m.paginator.SetPageSize(rows)
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder()

	if m.catalog == nil || len(m.ids) == 0 {
		v.Title("Course Catalog", "No catalog loaded")
		v.Muted("Press o to load a course file.")
		v.BlankLine()
		v.Message(m.Message, m.MessageKind)
		v.Help(BrowserKeys.Load, BrowserKeys.Help, BrowserKeys.Quit)
		return v.String()
	}

	v.Title("Course Catalog", fmt.Sprintf("%d courses from %s", len(m.ids), m.path))
	v.Raw(lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderDetail()))
	v.BlankLine()
	v.Message(m.Message, m.MessageKind)
	v.Help(
		BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.NextPage,
		BrowserKeys.Load, BrowserKeys.Report, BrowserKeys.Copy,
		BrowserKeys.Edit, BrowserKeys.Help, BrowserKeys.Quit,
	)
	return v.String()
}

func (m *BrowserModel) renderList() string {
	var b strings.Builder
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		id := m.ids[i]
		course, _ := m.catalog.Get(id)
		text := truncate(fmt.Sprintf("%s, %s", id, course.Name), listWidth-2)
		if i == m.paginator.Cursor() {
			b.WriteString(styles.CourseSelected.Render(text))
		} else {
			b.WriteString(styles.CourseID.Render(id))
			b.WriteString(styles.CourseName.Render(strings.TrimPrefix(text, id)))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render(m.paginator.PageLabel()))
	return lipgloss.NewStyle().Width(listWidth).Render(b.String())
}

func (m *BrowserModel) renderDetail() string {
	course, ok := m.Selected()
	if !ok {
		return ""
	}

	lines := []string{
		styles.CourseID.Render(course.ID) + " " + styles.CourseName.Render(course.Name),
		"",
		styles.InputLabel.Render("Prerequisites"),
	}
	prereqs := commands.ResolvePrerequisites(m.catalog, course)
	if len(prereqs) == 0 {
		lines = append(lines, styles.MutedText.Render("  None"))
	}
	for _, p := range prereqs {
		if p.Missing {
			lines = append(lines, "  "+styles.CourseID.Render(p.ID)+" "+styles.CourseMissing.Render("(missing from catalog)"))
			continue
		}
		lines = append(lines, "  "+styles.CourseID.Render(p.ID)+" "+styles.CourseName.Render(p.Name))
	}

	return styles.ActiveFrame().Render("", lines...)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
