package filesystem

import (
	"os"
	"path/filepath"

	"coursecat/internal/config"
	"coursecat/internal/ports"
)

// Resolver implements ports.PathResolver by probing the filesystem.
// Relative names are tried against the working directory first, then against
// each of its ancestors so the tool still finds a project-level data file
// when launched from a nested build directory.
type Resolver struct {
	workDir string // empty means os.Getwd at resolve time
	depth   int
}

// Ensure Resolver implements PathResolver
var _ ports.PathResolver = (*Resolver)(nil)

// NewResolver creates a resolver rooted at the process working directory
func NewResolver(depth int) *Resolver {
	return NewResolverAt("", depth)
}

// NewResolverAt creates a resolver that treats workDir as the working directory
func NewResolverAt(workDir string, depth int) *Resolver {
	if depth <= 0 {
		depth = config.DefaultSearchDepth
	}
	return &Resolver{workDir: workDir, depth: depth}
}

// Depth returns the number of directories probed by the ancestor search
func (r *Resolver) Depth() int {
	return r.depth
}

// Resolve returns the absolute path of fileName, or false when nothing matches
func (r *Resolver) Resolve(fileName string) (string, bool) {
	if fileName == "" {
		return "", false
	}

	if filepath.IsAbs(fileName) {
		if exists(fileName) {
			return filepath.Clean(fileName), true
		}
		return "", false
	}

	workDir, err := r.workingDir()
	if err != nil {
		return "", false
	}

	direct := filepath.Join(workDir, fileName)
	if exists(direct) {
		return direct, true
	}

	dir := workDir
	for i := 0; i < r.depth; i++ {
		candidate := filepath.Join(dir, fileName)
		if exists(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}

func (r *Resolver) workingDir() (string, error) {
	if r.workDir != "" {
		return filepath.Abs(r.workDir)
	}
	return os.Getwd()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
