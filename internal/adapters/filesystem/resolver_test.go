package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"coursecat/internal/config"
)

// setupNestedTree creates root/data/courses.csv and root/a/b/c/.../ n levels deep.
// Returns the root and the deepest directory.
func setupNestedTree(t *testing.T, levels int) (string, string) {
	t.Helper()

	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "courses.csv"), []byte("CSCI100,Intro\n"), 0644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	deep := root
	for i := 0; i < levels; i++ {
		deep = filepath.Join(deep, "lvl")
	}
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatalf("failed to create nested dirs: %v", err)
	}

	return root, deep
}

func TestResolve_EmptyName(t *testing.T) {
	r := NewResolverAt(t.TempDir(), config.DefaultSearchDepth)

	if _, ok := r.Resolve(""); ok {
		t.Error("expected empty name to be unresolved")
	}
}

func TestResolve_AbsolutePath(t *testing.T) {
	root, _ := setupNestedTree(t, 0)
	abs := filepath.Join(root, "data", "courses.csv")

	r := NewResolverAt(t.TempDir(), config.DefaultSearchDepth)

	got, ok := r.Resolve(abs)
	if !ok {
		t.Fatalf("expected %s to resolve", abs)
	}
	if got != abs {
		t.Errorf("expected %s, got %s", abs, got)
	}

	if _, ok := r.Resolve(filepath.Join(root, "nope.csv")); ok {
		t.Error("expected missing absolute path to be unresolved")
	}
}

func TestResolve_RelativeToWorkDir(t *testing.T) {
	root, _ := setupNestedTree(t, 0)

	r := NewResolverAt(root, config.DefaultSearchDepth)

	got, ok := r.Resolve(filepath.Join("data", "courses.csv"))
	if !ok {
		t.Fatal("expected relative path to resolve")
	}
	want := filepath.Join(root, "data", "courses.csv")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}

func TestResolve_AncestorSearch(t *testing.T) {
	root, deep := setupNestedTree(t, 3)

	r := NewResolverAt(deep, config.DefaultSearchDepth)

	got, ok := r.Resolve(filepath.Join("data", "courses.csv"))
	if !ok {
		t.Fatal("expected ancestor search to find the file")
	}
	want := filepath.Join(root, "data", "courses.csv")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestResolve_DepthBound(t *testing.T) {
	tests := []struct {
		name   string
		levels int
		depth  int
		wantOK bool
	}{
		// The working directory counts as the first probed level.
		{name: "file at last probed level", levels: 9, depth: 10, wantOK: true},
		{name: "file one level beyond", levels: 10, depth: 10, wantOK: false},
		{name: "custom shallow depth", levels: 2, depth: 2, wantOK: false},
		{name: "custom deeper depth", levels: 12, depth: 13, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, deep := setupNestedTree(t, tt.levels)

			r := NewResolverAt(deep, tt.depth)
			_, ok := r.Resolve(filepath.Join("data", "courses.csv"))
			if ok != tt.wantOK {
				t.Errorf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolverAt(t.TempDir(), config.DefaultSearchDepth)

	if _, ok := r.Resolve("definitely-not-here-7f3a.csv"); ok {
		t.Error("expected unresolved file")
	}
}

func TestResolve_ProcessWorkingDir(t *testing.T) {
	root, deep := setupNestedTree(t, 2)

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(deep); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}

	r := NewResolver(0)
	if r.Depth() != config.DefaultSearchDepth {
		t.Errorf("expected default depth %d, got %d", config.DefaultSearchDepth, r.Depth())
	}

	got, ok := r.Resolve(filepath.Join("data", "courses.csv"))
	if !ok {
		t.Fatal("expected file to resolve from process working directory")
	}

	// TempDir may sit behind a symlink (macOS /var -> /private/var)
	wantReal, _ := filepath.EvalSymlinks(filepath.Join(root, "data", "courses.csv"))
	gotReal, _ := filepath.EvalSymlinks(got)
	if gotReal != wantReal {
		t.Errorf("expected %s, got %s", wantReal, gotReal)
	}
}
