package mcp

import (
	"context"
	"log/slog"
	"sync"

	"coursecat/internal/application/commands"
	"coursecat/internal/domain"
	"coursecat/internal/ports"
)

// Session holds the catalog shared by all tool calls of one server.
// The MCP server runs handlers concurrently, so every catalog access goes
// through mu; loads parse into a fresh catalog and swap it in on success.
type Session struct {
	mu          sync.Mutex
	newCatalog  func() ports.CourseCatalog
	catalog     ports.CourseCatalog
	last        domain.LoadResult
	defaultFile string
	logger      *slog.Logger
}

// NewSession creates a session with an empty catalog. defaultFile is loaded
// when load_catalog is called without a file.
func NewSession(newCatalog func() ports.CourseCatalog, defaultFile string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		newCatalog:  newCatalog,
		catalog:     newCatalog(),
		defaultFile: defaultFile,
		logger:      logger,
	}
}

// Load reads fileName into a fresh catalog and makes it current when the load
// succeeds. An empty fileName loads the session default.
func (s *Session) Load(ctx context.Context, fileName string) (domain.LoadResult, error) {
	if fileName == "" {
		fileName = s.defaultFile
	}

	fresh := s.newCatalog()
	result, err := commands.NewLoadCatalogCommand(fresh, fileName, s.logger).Execute(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = result
	if err != nil {
		return result, err
	}
	s.catalog = fresh
	return result, nil
}

// LastResult returns the report of the most recent load
func (s *Session) LastResult() domain.LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// View runs fn with the current catalog while holding the session lock
func (s *Session) View(fn func(ports.CourseCatalog) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.catalog)
}
