package render

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/thoscut/iwscan/internal/cell"
)

// document is one cell reduced to the shown fields, in show order. Missing
// fields are left out.
type document struct {
	keys   []string
	values []string
}

func newDocument(c cell.Cell, show []cell.Field) document {
	var d document
	for _, f := range show {
		v, ok := c.Get(f)
		if !ok {
			continue
		}
		d.keys = append(d.keys, strings.ToLower(f.String()))
		d.values = append(d.values, v)
	}
	return d
}

func newDocuments(cells []cell.Cell, opts Options) []document {
	show := opts.show()
	docs := make([]document, len(cells))
	for i, c := range cells {
		docs[i] = newDocument(c, show)
	}
	return docs
}

// MarshalJSON keeps the show order, which a map would lose.
func (d document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w io.Writer, cells []cell.Cell, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocuments(cells, opts))
}
