package render

import (
	"bufio"
	"io"

	"github.com/thoscut/iwscan/internal/cell"
)

// writeOption prints an <option> element per cell for embedding into an
// HTML <select>. The ESSID is written verbatim, without escaping.
func writeOption(w io.Writer, cells []cell.Cell) error {
	bw := bufio.NewWriter(w)
	for _, c := range cells {
		bw.WriteString("<option>")
		bw.WriteString(c.Value(cell.ESSID))
		bw.WriteString("</option>\n")
	}
	return bw.Flush()
}
