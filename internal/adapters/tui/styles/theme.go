package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors for each role in the interface
type Palette struct {
	Border  lipgloss.TerminalColor
	Title   lipgloss.TerminalColor
	Number  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Prompt  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor // selection background
}

var (
	// DarkPalette uses bright ANSI colors for dark terminals
	DarkPalette = Palette{
		Border:  lipgloss.Color("13"), // bright magenta
		Title:   lipgloss.Color("15"), // bright white
		Number:  lipgloss.Color("11"), // bright yellow
		Text:    lipgloss.Color("15"),
		Prompt:  lipgloss.Color("14"), // bright cyan
		Success: lipgloss.Color("10"), // bright green
		Warning: lipgloss.Color("11"),
		Error:   lipgloss.Color("9"),  // bright red
		Info:    lipgloss.Color("12"), // bright blue
		Accent:  lipgloss.Color("5"),
	}

	// LightPalette uses the darker base ANSI colors for light terminals
	LightPalette = Palette{
		Border:  lipgloss.Color("5"), // magenta
		Title:   lipgloss.Color("0"), // black
		Number:  lipgloss.Color("4"), // blue
		Text:    lipgloss.Color("0"),
		Prompt:  lipgloss.Color("6"), // cyan
		Success: lipgloss.Color("2"), // green
		Warning: lipgloss.Color("3"), // gold
		Error:   lipgloss.Color("1"), // red
		Info:    lipgloss.Color("5"),
		Accent:  lipgloss.Color("4"),
	}

	// PlainPalette renders no color at all
	PlainPalette = Palette{
		Border:  lipgloss.NoColor{},
		Title:   lipgloss.NoColor{},
		Number:  lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Prompt:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
	}
)

// PaletteByName returns the palette for a theme name, defaulting to dark
func PaletteByName(name string) Palette {
	switch name {
	case "light":
		return LightPalette
	case "plain":
		return PlainPalette
	default:
		return DarkPalette
	}
}

var (
	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Course list styles
	CourseID       lipgloss.Style
	CourseName     lipgloss.Style
	CourseSelected lipgloss.Style
	CourseMissing  lipgloss.Style

	// Status bar
	StatusText lipgloss.Style

	// Input styles
	InputLabel   lipgloss.Style
	InputField   lipgloss.Style
	InputFocused lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Message styles
	Success  lipgloss.Style
	ErrorMsg lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style

	// Muted text style
	MutedText lipgloss.Style

	active Palette
)

func init() {
	Apply(DarkPalette)
}

// Apply rebuilds every package style from p.
// Call it once at startup, before any view renders.
func Apply(p Palette) {
	active = p
	plain := p == PlainPalette

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Title).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(p.Info).
		Italic(true)

	CourseID = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Number)

	CourseName = lipgloss.NewStyle().
		Foreground(p.Text)

	CourseSelected = lipgloss.NewStyle().
		Background(p.Accent).
		Foreground(p.Title).
		Bold(true)
	if plain {
		CourseSelected = lipgloss.NewStyle().Reverse(true)
	}

	CourseMissing = lipgloss.NewStyle().
		Foreground(p.Warning).
		Italic(true)

	StatusText = lipgloss.NewStyle().
		Foreground(p.Info)

	InputLabel = lipgloss.NewStyle().
		Foreground(p.Prompt).
		Bold(true)

	InputField = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Prompt).
		Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(p.Number).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
		Foreground(p.Info)

	HelpSeparator = lipgloss.NewStyle().
		Foreground(p.Border).
		SetString(" • ")

	Success = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(p.Warning)

	Info = lipgloss.NewStyle().
		Foreground(p.Info)

	MutedText = lipgloss.NewStyle().
		Foreground(p.Info).
		Faint(true)
}

// Active returns the palette last passed to Apply
func Active() Palette {
	return active
}
