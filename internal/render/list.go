package render

import (
	"bufio"
	"io"

	"github.com/thoscut/iwscan/internal/cell"
)

// writeList prints one "label<TAB><TAB>value" line per field and a blank
// line after each cell. Frequency gets a single tab since its label already
// reaches the second tab stop.
func writeList(w io.Writer, cells []cell.Cell, opts Options) error {
	bw := bufio.NewWriter(w)
	show := opts.show()
	for _, c := range cells {
		for _, f := range show {
			if !opts.OmitLabels {
				bw.WriteString(f.String())
				bw.WriteByte('\t')
				if f != cell.Frequency {
					bw.WriteByte('\t')
				}
			}
			bw.WriteString(c.Value(f))
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
