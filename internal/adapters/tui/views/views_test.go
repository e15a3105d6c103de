package views

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"coursecat/internal/domain"
)

type fakeCatalog struct {
	courses map[string]domain.Course
}

func (f fakeCatalog) Load(string) domain.LoadResult { return domain.LoadResult{} }

func (f fakeCatalog) Get(id string) (domain.Course, bool) {
	c, ok := f.courses[id]
	return c.Clone(), ok
}

func (f fakeCatalog) IDs() []string {
	return slices.Sorted(maps.Keys(f.courses))
}

func newFakeCatalog(courses ...domain.Course) fakeCatalog {
	f := fakeCatalog{courses: make(map[string]domain.Course)}
	for _, c := range courses {
		f.courses[c.ID] = c
	}
	return f
}

func sampleCatalog() fakeCatalog {
	return newFakeCatalog(
		domain.Course{ID: "CSCI100", Name: "Introduction to Computer Science"},
		domain.Course{ID: "CSCI200", Name: "Data Structures", Prerequisites: []string{"CSCI100"}},
		domain.Course{ID: "CSCI300", Name: "Introduction to Algorithms", Prerequisites: []string{"CSCI200", "MATH201"}},
	)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowserModel()
	m.SetCatalog(sampleCatalog(), "/data/courses.csv")

	tests := []struct {
		key  string
		want string
	}{
		{"j", "CSCI200"},
		{"j", "CSCI300"},
		{"j", "CSCI300"}, // stays on the last course
		{"k", "CSCI200"},
		{"k", "CSCI100"},
		{"k", "CSCI100"},
	}

	for _, tt := range tests {
		m.Update(keyRunes(tt.key))
		got, ok := m.Selected()
		if !ok {
			t.Fatal("expected a selected course")
		}
		if got.ID != tt.want {
			t.Errorf("after %q expected %s, got %s", tt.key, tt.want, got.ID)
		}
	}
}

func TestBrowserReloadKeepsCursor(t *testing.T) {
	m := NewBrowserModel()
	m.SetCatalog(sampleCatalog(), "courses.csv")
	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))

	m.SetCatalog(newFakeCatalog(domain.Course{ID: "CSCI100", Name: "Intro"}), "courses.csv")

	got, ok := m.Selected()
	if !ok || got.ID != "CSCI100" {
		t.Errorf("expected cursor clamped to CSCI100, got %+v (ok=%v)", got, ok)
	}
}

func TestBrowserCopySelected(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m := NewBrowserModel()
	m.SetCatalog(sampleCatalog(), "courses.csv")
	m.Update(keyRunes("j"))
	m.Update(keyRunes("y"))

	if copied != "CSCI200" {
		t.Errorf("expected CSCI200 on the clipboard, got %q", copied)
	}
	if m.MessageKind != MessageSuccess || m.Message != "Copied CSCI200" {
		t.Errorf("unexpected message %q (kind %d)", m.Message, m.MessageKind)
	}
}

func TestBrowserCopyFailure(t *testing.T) {
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { copyToClipboard = orig })

	m := NewBrowserModel()
	m.SetCatalog(sampleCatalog(), "courses.csv")
	m.Update(keyRunes("y"))

	if m.MessageKind != MessageError {
		t.Errorf("expected error message, got %q", m.Message)
	}
}

func TestBrowserEdit(t *testing.T) {
	m := NewBrowserModel()

	_, cmd := m.Update(keyRunes("e"))
	if cmd != nil {
		t.Error("expected no command without a catalog")
	}
	if m.MessageKind != MessageWarning {
		t.Errorf("expected warning, got %q", m.Message)
	}

	m.SetCatalog(sampleCatalog(), "/data/courses.csv")
	_, cmd = m.Update(keyRunes("e"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(OpenEditorMsg)
	if !ok {
		t.Fatalf("expected OpenEditorMsg, got %T", cmd())
	}
	if msg.Path != "/data/courses.csv" {
		t.Errorf("expected /data/courses.csv, got %s", msg.Path)
	}
}

func TestBrowserSwitchKeys(t *testing.T) {
	tests := []struct {
		key  string
		want tea.Msg
	}{
		{"o", SwitchToLoadMsg{}},
		{"w", SwitchToReportMsg{}},
		{"?", SwitchToHelpMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := NewBrowserModel()
			_, cmd := m.Update(keyRunes(tt.key))
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if got := cmd(); got != tt.want {
				t.Errorf("expected %T, got %T", tt.want, got)
			}
		})
	}
}

func TestBrowserViewShowsPrerequisites(t *testing.T) {
	m := NewBrowserModel()
	m.SetCatalog(sampleCatalog(), "courses.csv")
	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))

	view := m.View()
	for _, want := range []string{"3 courses from courses.csv", "CSCI200 Data Structures", "MATH201 (missing from catalog)", "Page 1/1"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q\n%s", want, view)
		}
	}
}

func TestBrowserViewEmpty(t *testing.T) {
	view := NewBrowserModel().View()
	if !strings.Contains(view, "No catalog loaded") {
		t.Errorf("expected empty-state text, got:\n%s", view)
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.TotalPages() != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages())
	}

	p.NextPage()
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("expected range 3-6, got %d-%d", start, end)
	}
	if p.Cursor() != 3 {
		t.Errorf("expected cursor 3, got %d", p.Cursor())
	}

	p.NextPage()
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("expected range 6-7, got %d-%d", start, end)
	}
	if p.NextPage() {
		t.Error("expected no page after the last one")
	}
	if p.PageLabel() != "Page 3/3" {
		t.Errorf("unexpected label %q", p.PageLabel())
	}

	p.CursorUp()
	if p.CurrentPage() != 2 {
		t.Errorf("expected cursor to pull the page back, got page %d", p.CurrentPage())
	}

	p.SetTotal(2)
	if p.Cursor() != 1 || p.CurrentPage() != 1 {
		t.Errorf("expected cursor 1 on page 1, got %d on page %d", p.Cursor(), p.CurrentPage())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 || p.TotalPages() != 1 {
		t.Errorf("expected empty paginator, got cursor %d pages %d", p.Cursor(), p.TotalPages())
	}
}

func TestLoadSubmit(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantFile    string
		wantDropped bool
	}{
		{name: "typed name", input: "courses.csv", wantFile: "courses.csv"},
		{name: "empty uses default", input: "", wantFile: "default.csv"},
		{name: "trailing comma", input: "courses.csv,", wantFile: "courses.csv", wantDropped: true},
		{name: "only comma", input: ",", wantFile: "default.csv", wantDropped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLoadModel("default.csv")
			m.Prefill(tt.input)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("expected a command")
			}
			msg, ok := cmd().(LoadRequestMsg)
			if !ok {
				t.Fatalf("expected LoadRequestMsg, got %T", cmd())
			}
			if msg.FileName != tt.wantFile || msg.DroppedComma != tt.wantDropped {
				t.Errorf("expected (%s, %v), got (%s, %v)", tt.wantFile, tt.wantDropped, msg.FileName, msg.DroppedComma)
			}
		})
	}
}

func TestLoadTypedInput(t *testing.T) {
	m := NewLoadModel("default.csv")
	for _, k := range []tea.KeyMsg{keyRunes("a.csv"), {Type: tea.KeyTab}, keyRunes("v")} {
		m.Update(k)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(LoadRequestMsg)
	if !ok || msg.FileName != "a.csvv" {
		t.Errorf("expected LoadRequestMsg for a.csvv, got %#v", cmd())
	}
	if !strings.Contains(m.View(), "Course file") {
		t.Errorf("expected field label, got:\n%s", m.View())
	}
}

func TestLoadCancel(t *testing.T) {
	m := NewLoadModel("default.csv")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(SwitchToBrowserMsg); !ok {
		t.Errorf("expected SwitchToBrowserMsg, got %T", cmd())
	}
}

func TestLoadIgnoresKeysWhileLoading(t *testing.T) {
	m := NewLoadModel("default.csv")
	if cmd := m.StartLoading("courses.csv"); cmd == nil {
		t.Error("expected spinner tick command")
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("expected enter to be ignored while loading")
	}
	if !strings.Contains(m.View(), "Loading courses.csv") {
		t.Errorf("expected spinner text, got:\n%s", m.View())
	}

	m.StopLoading()
	if m.Loading() {
		t.Error("expected loading to stop")
	}
}

func TestReportView(t *testing.T) {
	tests := []struct {
		name   string
		result domain.LoadResult
		kept   int
		want   []string
		absent []string
	}{
		{
			name: "successful load",
			result: domain.LoadResult{
				OK:       true,
				Courses:  8,
				Path:     "/data/courses.csv",
				Warnings: []string{"Skipping line 3: expected course ID and name."},
			},
			want: []string{"Loaded 8 courses.", "Warnings (1)", "Skipping line 3", "All prerequisites found in the loaded catalog."},
		},
		{
			name: "missing prerequisites",
			result: domain.LoadResult{
				OK:                   true,
				Courses:              1,
				MissingPrerequisites: []string{"MATH201 (referenced by CSCI300)"},
			},
			want:   []string{"MATH201 (referenced by CSCI300)"},
			absent: []string{"All prerequisites found in the loaded catalog"},
		},
		{
			name:   "failed load keeps catalog",
			result: domain.LoadResult{Path: "missing.csv", Warnings: []string{"Unable to locate file: missing.csv"}},
			kept:   8,
			want:   []string{"No courses were loaded.", "previous catalog (8 courses)", "Unable to locate file: missing.csv"},
			absent: []string{"Missing prerequisites"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewReportModel()
			m.SetResult(tt.result, tt.kept)

			view := m.View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("expected view to contain %q\n%s", want, view)
				}
			}
			for _, absent := range tt.absent {
				if strings.Contains(view, absent) {
					t.Errorf("expected view not to contain %q", absent)
				}
			}
		})
	}
}

func TestReportBeforeAnyLoad(t *testing.T) {
	m := NewReportModel()
	if _, ok := m.Result(); ok {
		t.Error("expected no result before a load")
	}
	if !strings.Contains(m.View(), "No file has been loaded yet.") {
		t.Errorf("unexpected view:\n%s", m.View())
	}
}
