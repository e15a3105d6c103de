package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"coursecat/internal/ports"
)

// ErrNoEditor is returned when no editor could be found
var ErrNoEditor = errors.New("no editor found: set COURSECAT_EDITOR or $EDITOR")

// fallbackEditors are tried in order when no variable names an editor
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	preferred string
	lookPath  func(string) (string, error)
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener. preferred overrides $EDITOR and
// $VISUAL when non-empty and may carry arguments ("code --wait").
func NewOpener(preferred string) *Opener {
	return &Opener{
		preferred: preferred,
		lookPath:  exec.LookPath,
	}
}

// Command returns the editor invocation for path with the terminal attached
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	args := strings.Fields(o.findEditor())
	if len(args) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) findEditor() string {
	if o.preferred != "" {
		return o.preferred
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range fallbackEditors {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
