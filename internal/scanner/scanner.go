package scanner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thoscut/iwscan/internal/cell"
)

var (
	ErrNoTarget = errors.New("no scan file given")
)

// Backend produces raw scan text for a target. For the command backend the
// target is an interface name ("" scans all interfaces); for the file
// backend it is a path.
type Backend interface {
	Scan(ctx context.Context, target string) ([]byte, error)
}

// Scanner runs a backend and parses what it returns.
type Scanner struct {
	backend Backend
	filter  *cell.Filter
}

// New creates a Scanner reading from backend. A nil filter keeps every cell.
func New(backend Backend, filter *cell.Filter) *Scanner {
	return &Scanner{
		backend: backend,
		filter:  filter,
	}
}

// SetBackend swaps the backend, e.g. for a file or a fixed test fixture.
func (s *Scanner) SetBackend(b Backend) {
	s.backend = b
}

// Scan fetches the complete scan text for target, then parses it. Nothing is
// parsed until the backend has finished.
func (s *Scanner) Scan(ctx context.Context, target string) (cell.Scan, error) {
	text, err := s.backend.Scan(ctx, target)
	if err != nil {
		return cell.Scan{}, err
	}

	scan := cell.Parse(text, s.filter)
	slog.Debug("scan parsed",
		"target", target,
		"bytes", len(text),
		"cells", len(scan.Cells),
		"filter", s.filter.String())
	return scan, nil
}
