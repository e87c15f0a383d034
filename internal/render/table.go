package render

import (
	"io"
	"strings"

	"github.com/thoscut/iwscan/internal/cell"
)

const tabStop = 8

// writeTable aligns columns with tabs only. Each column ends at the first
// tab stop past its width, so every row of the column, the header included,
// starts its next value in the same terminal column.
func writeTable(w io.Writer, cells []cell.Cell, opts Options) error {
	show := opts.show()
	widths := tableWidths(opts)

	var sb strings.Builder
	if !opts.OmitLabels {
		for _, f := range show {
			writeTableCell(&sb, f.Header(), widths.Get(f))
		}
		sb.WriteByte('\n')
	}
	for _, c := range cells {
		for _, f := range show {
			writeTableCell(&sb, c.Value(f), widths.Get(f))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// tableWidths copies the parsed widths, folds in the header labels when
// they are shown and moves every width off an exact tab stop. A value that
// fills a tab stop exactly would otherwise butt up against the next column.
func tableWidths(opts Options) cell.Widths {
	widths := opts.Widths
	if !opts.OmitLabels {
		for _, f := range cell.Fields() {
			widths.Grow(f, cell.StringWidth(f.Header()))
		}
	}
	for _, f := range cell.Fields() {
		if widths.Get(f)%tabStop == 0 {
			widths.Grow(f, widths.Get(f)+1)
		}
	}
	return widths
}

func writeTableCell(sb *strings.Builder, value string, width int) {
	sb.WriteString(value)
	sb.WriteString(strings.Repeat("\t", tabCount(cell.StringWidth(value), width)))
}

// tabCount returns how many tabs move the cursor from the end of a value of
// length n to the column after one of the given width.
func tabCount(n, width int) int {
	if n%tabStop == 0 {
		n++
	}
	tabs := floorDiv((width/tabStop+1)*tabStop-n, tabStop) + 1
	return max(tabs, 1)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
