package editor

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func noEditors(string) (string, error) { return "", exec.ErrNotFound }

func TestCommand(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		editor    string
		visual    string
		want      []string
	}{
		{
			name:      "preferred wins",
			preferred: "code --wait",
			editor:    "vim",
			want:      []string{"code", "--wait", "courses.csv"},
		},
		{
			name:   "EDITOR",
			editor: "nano",
			visual: "vim",
			want:   []string{"nano", "courses.csv"},
		},
		{
			name:   "VISUAL when EDITOR is unset",
			visual: "emacs -nw",
			want:   []string{"emacs", "-nw", "courses.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)

			o := NewOpener(tt.preferred)
			o.lookPath = noEditors

			cmd, err := o.Command("courses.csv")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.want) {
				t.Errorf("expected args %v, got %v", tt.want, cmd.Args)
			}
		})
	}
}

func TestCommandFallback(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	o := NewOpener("")
	o.lookPath = func(name string) (string, error) {
		if name == "vi" {
			return "/usr/bin/vi", nil
		}
		return "", exec.ErrNotFound
	}

	cmd, err := o.Command("courses.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Args[0] != "/usr/bin/vi" {
		t.Errorf("expected /usr/bin/vi, got %s", cmd.Args[0])
	}
}

func TestCommandNoEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	o := NewOpener("")
	o.lookPath = noEditors

	if _, err := o.Command("courses.csv"); !errors.Is(err, ErrNoEditor) {
		t.Errorf("expected ErrNoEditor, got %v", err)
	}
}
