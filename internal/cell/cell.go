package cell

import "github.com/mattn/go-runewidth"

// Cell is one access point seen in a scan. Every field is optional; a cell
// only leaves the parser once its ESSID has been seen.
type Cell struct {
	values [fieldCount]string
	set    [fieldCount]bool
}

// New returns a cell holding the given values. It is mostly useful in tests
// and for callers that build cells from another source.
func New(values map[Field]string) Cell {
	var c Cell
	for f, v := range values {
		c.Set(f, v)
	}
	return c
}

// Set stores v for f.
func (c *Cell) Set(f Field, v string) {
	if !f.valid() {
		return
	}
	c.values[f] = v
	c.set[f] = true
}

// Get returns the value for f and whether the scan reported it.
func (c Cell) Get(f Field) (string, bool) {
	if !f.valid() {
		return "", false
	}
	return c.values[f], c.set[f]
}

// Value returns the value for f, or "" when it is missing.
func (c Cell) Value(f Field) string {
	v, _ := c.Get(f)
	return v
}

// Widths holds the widest rendered value per field. It feeds the table
// renderer's tab arithmetic.
type Widths [fieldCount]int

// DefaultWidths returns the seeded minimum widths. Only the ESSID entry grows
// while parsing; the others are fixed by the scan text format.
func DefaultWidths() Widths {
	var w Widths
	w[Address] = 17
	w[Channel] = 3
	w[ESSID] = 0
	w[Frequency] = 9
	w[Level] = 3
	w[Quality] = 2
	return w
}

// Get returns the width recorded for f.
func (w Widths) Get(f Field) int {
	if !f.valid() {
		return 0
	}
	return w[f]
}

// Grow raises the width of f to at least n.
func (w *Widths) Grow(f Field, n int) {
	if f.valid() && n > w[f] {
		w[f] = n
	}
}

// StringWidth is the rendered width of s in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
