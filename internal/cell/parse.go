package cell

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Scan is the outcome of parsing one batch of scan text.
type Scan struct {
	// Cells holds the finished cells in scan order.
	Cells []Cell
	// Widths is the column width table after every finished cell was seen.
	Widths Widths
}

// aggregator folds classified lines into cells. The in-progress cell only
// becomes visible in cells once its ESSID line arrives.
type aggregator struct {
	filter  *Filter
	current *Cell
	scan    Scan
}

func (a *aggregator) feed(tokens []Token) {
	for _, tok := range tokens {
		switch tok.Field {
		case Address:
			a.current = &Cell{}
			a.current.Set(Address, tok.Value)
		case ESSID:
			if a.current == nil {
				continue
			}
			a.current.Set(ESSID, tok.Value)
			a.finish()
		default:
			if a.current != nil {
				a.current.Set(tok.Field, tok.Value)
			}
		}
	}
}

func (a *aggregator) finish() {
	c := *a.current
	a.current = nil
	if !a.filter.Match(c) {
		return
	}
	a.scan.Cells = append(a.scan.Cells, c)
	a.scan.Widths.Grow(ESSID, StringWidth(c.Value(ESSID)))
}

// Parse turns scan text into cells. Cells rejected by filter are dropped
// before they can influence the width table; a nil filter keeps everything.
// Lines that match no field are skipped.
func Parse(text []byte, filter *Filter) Scan {
	a := aggregator{
		filter: filter,
		scan:   Scan{Widths: DefaultWidths()},
	}
	sc := bufio.NewScanner(bytes.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for sc.Scan() {
		a.feed(Classify(sc.Text()))
	}
	return a.scan
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, filter *Filter) (Scan, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return Scan{}, fmt.Errorf("read scan text: %w", err)
	}
	return Parse(text, filter), nil
}
