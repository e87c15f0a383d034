// Package render writes parsed cells in one of several output formats.
//
// The list, table and option formats reproduce the classic iwlist front end
// output byte for byte, including its tab arithmetic. JSON and YAML emit the
// same fields as documents for scripting.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/thoscut/iwscan/internal/cell"
)

// ErrUnsupportedFormat is returned for an unknown output format name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names an output format.
type Format string

const (
	List   Format = "list"
	Table  Format = "table"
	Option Format = "option"
	JSON   Format = "json"
	YAML   Format = "yaml"
)

var formats = []Format{List, Table, Option, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// DefaultShow is the field order used when no show list is given.
var DefaultShow = []cell.Field{cell.Address, cell.ESSID, cell.Frequency, cell.Quality, cell.Channel, cell.Level}

// Options controls what a renderer prints.
type Options struct {
	// Show lists the fields to print, in order. Empty means DefaultShow.
	// The option format ignores it.
	Show []cell.Field
	// OmitLabels drops list labels and the table header.
	OmitLabels bool
	// Widths is the column width table collected while parsing. Only the
	// table format reads it.
	Widths cell.Widths
}

func (o Options) show() []cell.Field {
	if len(o.Show) == 0 {
		return DefaultShow
	}
	return o.Show
}

// Write renders cells to w. Nothing is written for an empty slice.
func Write(w io.Writer, f Format, cells []cell.Cell, opts Options) error {
	if len(cells) == 0 {
		if _, err := ParseFormat(string(f)); err != nil {
			return err
		}
		return nil
	}
	switch f {
	case List:
		return writeList(w, cells, opts)
	case Table:
		return writeTable(w, cells, opts)
	case Option:
		return writeOption(w, cells)
	case JSON:
		return writeJSON(w, cells, opts)
	case YAML:
		return writeYAML(w, cells, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
