package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame describes the box drawn around menus and report blocks
type Frame struct {
	Name   string
	Border lipgloss.Border
	Boxed  bool
}

// asciiBorder only uses characters every terminal can draw
var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

var activeFrame = FrameByName("ascii")

// UseFrame sets the frame returned by ActiveFrame
func UseFrame(f Frame) {
	activeFrame = f
}

// ActiveFrame returns the frame last passed to UseFrame
func ActiveFrame() Frame {
	return activeFrame
}

// FrameByName returns the frame for a style name, defaulting to ascii
func FrameByName(name string) Frame {
	switch name {
	case "unicode":
		return Frame{Name: "unicode", Border: lipgloss.DoubleBorder(), Boxed: true}
	case "none":
		return Frame{Name: "none"}
	default:
		return Frame{Name: "ascii", Border: asciiBorder, Boxed: true}
	}
}

// Render draws lines inside the frame using the active border color.
// An empty title is omitted; a frameless style returns the lines as-is.
func (f Frame) Render(title string, lines ...string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(Title.UnsetMarginBottom().Render(title))
		if len(lines) > 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString(strings.Join(lines, "\n"))

	if !f.Boxed {
		return b.String()
	}
	return lipgloss.NewStyle().
		Border(f.Border).
		BorderForeground(active.Border).
		Padding(0, 1).
		Render(b.String())
}
