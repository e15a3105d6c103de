package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coursecat/internal/adapters/tui/styles"
	"coursecat/internal/domain"
)

// ReportKeyMap defines key bindings for the load report
type ReportKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
}

var ReportKeys = ReportKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "w"),
		key.WithHelp("esc/q", "close"),
	),
}

// ReportModel shows the outcome of the most recent load
type ReportModel struct {
	ViewState
	result  domain.LoadResult
	hasRun  bool
	kept    int // courses still shown after a failed load
	offset  int
	content []string
}

// NewReportModel creates an empty report
func NewReportModel() *ReportModel {
	return &ReportModel{}
}

// SetResult records a load outcome. kept is the number of courses that stay
// visible when the load failed (0 when nothing was loaded before).
func (m *ReportModel) SetResult(result domain.LoadResult, kept int) {
	m.result = result
	m.hasRun = true
	m.kept = kept
	m.offset = 0
	m.content = m.buildContent()
}

// Result returns the last recorded load outcome
func (m *ReportModel) Result() (domain.LoadResult, bool) {
	return m.result, m.hasRun
}

// Init initializes the report view
func (m *ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report view
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ReportKeys.Close):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, ReportKeys.Up):
			if m.offset > 0 {
				m.offset--
			}
		case key.Matches(msg, ReportKeys.Down):
			if m.offset < len(m.content)-m.visibleRows() {
				m.offset++
			}
		}
	}
	return m, nil
}

func (m *ReportModel) visibleRows() int {
	if m.Height <= 10 {
		return max(len(m.content), 1)
	}
	return m.Height - 8
}

func (m *ReportModel) buildContent() []string {
	r := m.result
	var lines []string

	lines = append(lines, RenderLabelValue("File", r.Path))
	if r.OK {
		lines = append(lines, styles.Success.Render(fmt.Sprintf("Loaded %d courses.", r.Courses)))
	} else {
		lines = append(lines, styles.ErrorMsg.Render("No courses were loaded."))
		if m.kept > 0 {
			lines = append(lines, styles.MutedText.Render(fmt.Sprintf("The previous catalog (%d courses) is still active.", m.kept)))
		}
	}
	lines = append(lines, "")

	lines = append(lines, styles.InputLabel.Render(fmt.Sprintf("Warnings (%d)", len(r.Warnings))))
	if len(r.Warnings) == 0 {
		lines = append(lines, "  "+styles.MutedText.Render("None"))
	}
	for _, w := range r.Warnings {
		lines = append(lines, "  "+styles.Warning.Render(w))
	}

	if r.OK {
		lines = append(lines, "")
		lines = append(lines, styles.InputLabel.Render("Missing prerequisites"))
		if len(r.MissingPrerequisites) == 0 {
			lines = append(lines, "  "+styles.Success.Render("All prerequisites found in the loaded catalog."))
		}
		for _, mp := range r.MissingPrerequisites {
			lines = append(lines, "  "+styles.CourseMissing.Render(mp))
		}
	}
	return lines
}

// View renders the report
func (m *ReportModel) View() string {
	v := NewViewBuilder()
	v.Title("Load Report", "")

	if !m.hasRun {
		v.Muted("No file has been loaded yet.")
		v.BlankLine()
		v.Help(ReportKeys.Close)
		return v.String()
	}

	end := min(m.offset+m.visibleRows(), len(m.content))
	for _, line := range m.content[m.offset:end] {
		v.Line(line)
	}
	v.BlankLine()
	v.Help(ReportKeys.Up, ReportKeys.Down, ReportKeys.Close)
	return v.String()
}
