package ports

import "os/exec"

// EditorOpener builds the command that edits a file.
// The editor comes from COURSECAT_EDITOR, then $EDITOR and $VISUAL, then the
// first common editor found on PATH.
type EditorOpener interface {
	// Command returns the editor process for path, ready for tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}
