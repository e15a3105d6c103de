package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"coursecat/internal/adapters/tui/views"
	"coursecat/internal/application/commands"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewLoad
	ViewReport
	ViewHelp
)

// CatalogFactory returns an empty catalog for each load
type CatalogFactory func() ports.CourseCatalog

// App is the main TUI application model.
// Loads run on a command goroutine against a fresh catalog, which replaces the
// current one in Update only when the load succeeds.
type App struct {
	newCatalog  CatalogFactory
	catalog     ports.CourseCatalog
	initialFile string
	editor      ports.EditorOpener
	logger      *slog.Logger
	notice      string // shown with the next load outcome

	state   ViewState
	browser *views.BrowserModel
	load    *views.LoadModel
	report  *views.ReportModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. initialFile is loaded on start when
// non-empty and also serves as the load form default. ed may be nil.
func NewApp(newCatalog CatalogFactory, initialFile string, ed ports.EditorOpener, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		newCatalog:  newCatalog,
		initialFile: initialFile,
		editor:      ed,
		logger:      logger,
		state:       ViewBrowser,
		browser:     views.NewBrowserModel(),
		load:        views.NewLoadModel(initialFile),
		report:      views.NewReportModel(),
		help:        views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.initialFile == "" {
		a.state = ViewLoad
		return a.load.Init()
	}
	return a.startLoad(a.initialFile)
}

// catalogLoadedMsg carries the outcome of a load back to the UI goroutine
type catalogLoadedMsg struct {
	catalog ports.CourseCatalog
	result  domain.LoadResult
	err     error
}

type editorFinishedMsg struct {
	path string
	err  error
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.load.SetSize(msg.Width, msg.Height)
		a.report.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.SwitchToLoadMsg:
		a.state = ViewLoad
		a.load.Prefill(a.browser.Path())
		return a, a.load.Init()

	case views.SwitchToReportMsg:
		a.state = ViewReport
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Load messages
	case views.LoadRequestMsg:
		if msg.DroppedComma {
			a.notice = "Trailing comma ignored in file name. "
		}
		return a, a.startLoad(msg.FileName)

	case catalogLoadedMsg:
		a.finishLoad(msg)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.browser.SetMessage(fmt.Sprintf("Editor failed: %v", msg.err), views.MessageError)
			return a, nil
		}
		return a, a.startLoad(msg.path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewLoad:
		_, cmd = a.load.Update(msg)
	case ViewReport:
		_, cmd = a.report.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) startLoad(fileName string) tea.Cmd {
	a.state = ViewLoad
	return tea.Batch(a.load.StartLoading(fileName), a.loadCatalog(fileName))
}

// loadCatalog must not touch App state: it runs off the UI goroutine
func (a *App) loadCatalog(fileName string) tea.Cmd {
	fresh := a.newCatalog()
	logger := a.logger
	return func() tea.Msg {
		result, err := commands.NewLoadCatalogCommand(fresh, fileName, logger).Execute(context.Background())
		return catalogLoadedMsg{catalog: fresh, result: result, err: err}
	}
}

func (a *App) finishLoad(msg catalogLoadedMsg) {
	a.load.StopLoading()
	notice := a.notice
	a.notice = ""

	if msg.err != nil {
		kept := 0
		if a.catalog != nil {
			kept = len(a.catalog.IDs())
		}
		a.report.SetResult(msg.result, kept)
		a.browser.SetMessage(notice+"Load failed (w to review)", views.MessageError)
		a.state = ViewReport
		return
	}

	a.catalog = msg.catalog
	a.browser.SetCatalog(msg.catalog, msg.result.Path)
	a.report.SetResult(msg.result, 0)
	a.state = ViewBrowser

	if n := len(msg.result.Warnings); n > 0 {
		a.browser.SetMessage(fmt.Sprintf("%sLoaded %d courses with %d warnings (w to review)", notice, msg.result.Courses, n), views.MessageWarning)
		return
	}
	if notice != "" {
		a.browser.SetMessage(fmt.Sprintf("%sLoaded %d courses", notice, msg.result.Courses), views.MessageWarning)
		return
	}
	a.browser.SetMessage(fmt.Sprintf("Loaded %d courses", msg.result.Courses), views.MessageSuccess)
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		a.browser.SetMessage("No editor configured", views.MessageWarning)
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{path: path, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

// Catalog returns the catalog currently shown, nil before the first successful load
func (a *App) Catalog() ports.CourseCatalog {
	return a.catalog
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewLoad:
		return a.load.View()
	case ViewReport:
		return a.report.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}

// Run shows the dashboard on the alternate screen until the user quits
func Run(newCatalog CatalogFactory, initialFile string, ed ports.EditorOpener, logger *slog.Logger) error {
	p := tea.NewProgram(NewApp(newCatalog, initialFile, ed, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
