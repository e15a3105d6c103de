package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coursecat/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// InputForm is a labelled text input that is always focused
type InputForm struct {
	Label string
	Input textinput.Model
	Keys  InputFormKeyMap
}

// NewInputForm creates a focused input with the given label and placeholder
func NewInputForm(label, placeholder string, charLimit int) *InputForm {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.PromptStyle = styles.InputLabel
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	input.Focus()

	return &InputForm{
		Label: label,
		Input: input,
		Keys:  DefaultInputFormKeys,
	}
}

// Init returns the cursor blink command
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update passes msg to the text input
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// Value returns the trimmed input
func (f *InputForm) Value() string {
	return strings.TrimSpace(f.Input.Value())
}

// SetValue replaces the input and moves the cursor to its end
func (f *InputForm) SetValue(value string) {
	f.Input.SetValue(value)
	f.Input.CursorEnd()
}

// Reset clears the input
func (f *InputForm) Reset() {
	f.Input.Reset()
}

// View renders the label above the input
func (f *InputForm) View() string {
	return styles.InputLabel.Render(f.Label) + "\n" + styles.InputFocused.Render(f.Input.View())
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	submit := f.Keys.Submit
	submit.SetHelp("enter", submitText)
	return RenderHelpLine(submit, f.Keys.Cancel)
}
