package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"coursecat/internal/adapters/tui/styles"
	"coursecat/internal/application"
)

// LoadModel asks for a catalog file and shows a spinner while it loads
type LoadModel struct {
	ViewState
	form        *InputForm
	spinner     spinner.Model
	loading     bool
	loadingFile string
	defaultFile string
}

// NewLoadModel creates the load form. An empty submission loads defaultFile.
func NewLoadModel(defaultFile string) *LoadModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Info

	return &LoadModel{
		form:        NewInputForm("Course file", defaultFile, 4096),
		spinner:     s,
		defaultFile: defaultFile,
	}
}

// Init initializes the load form
func (m *LoadModel) Init() tea.Cmd {
	return m.form.Init()
}

// Prefill replaces the file name shown in the form
func (m *LoadModel) Prefill(fileName string) {
	m.form.Reset()
	m.form.SetValue(fileName)
}

// StartLoading switches to the spinner for fileName
func (m *LoadModel) StartLoading(fileName string) tea.Cmd {
	m.loading = true
	m.loadingFile = fileName
	m.ClearMessage()
	return m.spinner.Tick
}

// StopLoading returns to the input form
func (m *LoadModel) StopLoading() {
	m.loading = false
	m.loadingFile = ""
}

// Loading reports whether a load is in flight
func (m *LoadModel) Loading() bool {
	return m.loading
}

// Update handles messages for the load form
func (m *LoadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			fileName, dropped := application.CleanFileName(m.form.Value())
			if fileName == "" {
				fileName = m.defaultFile
			}
			return m, func() tea.Msg {
				return LoadRequestMsg{FileName: fileName, DroppedComma: dropped}
			}
		}
	}

	return m, m.form.Update(msg)
}

// View renders the load form or the spinner
func (m *LoadModel) View() string {
	v := NewViewBuilder()
	v.Title("Load Catalog", "Relative names are searched in the working directory and its parents")

	if m.loading {
		v.Line(m.spinner.View() + " Loading " + m.loadingFile + "...")
		return v.String()
	}

	v.Line(m.form.View())
	v.Muted("Leave empty to load " + m.defaultFile)
	v.BlankLine()
	v.Message(m.Message, m.MessageKind)
	v.Raw(m.form.RenderHelp("load"))
	return v.String()
}
