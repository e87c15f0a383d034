package scanner

import (
	"context"
	"fmt"
	"io"
	"os"
)

// FileBackend reads scan text captured earlier, standing in for the scan
// command. The path "-" reads Stdin.
type FileBackend struct {
	Stdin io.Reader
}

func (b FileBackend) Scan(_ context.Context, path string) ([]byte, error) {
	switch path {
	case "":
		return nil, ErrNoTarget
	case "-":
		if b.Stdin == nil {
			return nil, fmt.Errorf("read scan text: %w", ErrNoTarget)
		}
		data, err := io.ReadAll(b.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read scan text: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scan file: %w", err)
	}
	return data, nil
}

// StaticBackend returns fixed scan text, for tests and replays without a
// wireless device.
type StaticBackend struct {
	Text []byte
	Err  error

	// Targets records every target Scan was called with.
	Targets []string
}

// NewStaticBackend creates a backend that always returns text.
func NewStaticBackend(text string) *StaticBackend {
	return &StaticBackend{Text: []byte(text)}
}

func (b *StaticBackend) Scan(_ context.Context, target string) ([]byte, error) {
	b.Targets = append(b.Targets, target)
	if b.Err != nil {
		return nil, b.Err
	}
	return b.Text, nil
}
