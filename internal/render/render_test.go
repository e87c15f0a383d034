package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoscut/iwscan/internal/cell"
	"github.com/thoscut/iwscan/internal/render"
)

const twoCells = `wlan0     Scan completed :
          Cell 01 - Address: AA:BB:CC:DD:EE:01
                    Channel:6
                    Frequency:2.437 GHz (Channel 6)
                    Quality=55/70  Signal level=-60 dBm
                    ESSID:"Home"
          Cell 02 - Address: AA:BB:CC:DD:EE:02
                    Channel:11
                    Frequency:2.462 GHz (Channel 11)
                    Quality=40/70  Signal level=-70 dBm
                    ESSID:"Guest"
`

func parse(t *testing.T, text string) cell.Scan {
	t.Helper()
	scan := cell.Parse([]byte(text), nil)
	require.NotEmpty(t, scan.Cells)
	return scan
}

func renderString(t *testing.T, f render.Format, scan cell.Scan, opts render.Options) string {
	t.Helper()
	opts.Widths = scan.Widths
	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, f, scan.Cells, opts))
	return buf.String()
}

func show(keys string) []cell.Field {
	fields, err := cell.ParseFields([]string{keys})
	if err != nil {
		panic(err)
	}
	return fields
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range render.Formats() {
		got, err := render.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := render.ParseFormat("csv")
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestWriteUnsupported(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := render.Write(&buf, render.Format("xml"), parse(t, twoCells).Cells, render.Options{})
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)

	err = render.Write(&buf, render.Format("xml"), nil, render.Options{})
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	for _, f := range render.Formats() {
		var buf bytes.Buffer
		require.NoError(t, render.Write(&buf, f, nil, render.Options{}))
		assert.Empty(t, buf.String(), f)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.List, parse(t, twoCells), render.Options{Show: show("ae")})
	want := "Address\t\tAA:BB:CC:DD:EE:01\n" +
		"ESSID\t\tHome\n" +
		"\n" +
		"Address\t\tAA:BB:CC:DD:EE:02\n" +
		"ESSID\t\tGuest\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestListFrequencyTakesOneTab(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.List, parse(t, twoCells), render.Options{Show: show("fl")})
	want := "Frequency\t2.437\nLevel\t\t-60\n\nFrequency\t2.462\nLevel\t\t-70\n\n"
	assert.Equal(t, want, got)
}

func TestListOmitLabels(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.List, parse(t, twoCells), render.Options{Show: show("ea"), OmitLabels: true})
	want := "Home\nAA:BB:CC:DD:EE:01\n\nGuest\nAA:BB:CC:DD:EE:02\n\n"
	assert.Equal(t, want, got)
}

func TestListDefaultShow(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.List, parse(t, twoCells), render.Options{})
	lines := strings.Split(got, "\n")
	assert.Equal(t, "Address\t\tAA:BB:CC:DD:EE:01", lines[0])
	assert.Equal(t, "ESSID\t\tHome", lines[1])
	assert.Equal(t, "Frequency\t2.437", lines[2])
	assert.Equal(t, "Quality\t\t55", lines[3])
	assert.Equal(t, "Channel\t\t6", lines[4])
	assert.Equal(t, "Level\t\t-60", lines[5])
	assert.Equal(t, "", lines[6])
}

func TestTable(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.Table, parse(t, twoCells), render.Options{Show: show("ae")})
	want := "Address\t\t\tESSID\t\n" +
		"AA:BB:CC:DD:EE:01\tHome\t\n" +
		"AA:BB:CC:DD:EE:02\tGuest\t\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestTableOmitLabels(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.Table, parse(t, twoCells), render.Options{Show: show("ae"), OmitLabels: true})
	want := "AA:BB:CC:DD:EE:01\tHome\t\n" +
		"AA:BB:CC:DD:EE:02\tGuest\t\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestTableWidthOnTabStop(t *testing.T) {
	t.Parallel()

	text := "Address: 11:11:11:11:11:11\nESSID:\"abcdefgh\"\n" +
		"Address: 22:22:22:22:22:22\nESSID:\"ab\"\n"
	got := renderString(t, render.Table, parse(t, text), render.Options{Show: show("ea"), OmitLabels: true})
	want := "abcdefgh\t11:11:11:11:11:11\t\n" +
		"ab\t\t22:22:22:22:22:22\t\n" +
		"\n"
	assert.Equal(t, want, got)
}

// columnStarts expands tabs to 8-column stops and returns the column where
// each value of line begins. Values must be non-empty.
func columnStarts(line string) []int {
	starts := []int{0}
	col := 0
	afterTab := false
	for _, r := range line {
		if r == '\t' {
			col = (col/8 + 1) * 8
			afterTab = true
			continue
		}
		if afterTab {
			starts = append(starts, col)
			afterTab = false
		}
		col += cell.StringWidth(string(r))
	}
	return starts
}

func TestTableColumnsAlign(t *testing.T) {
	t.Parallel()

	text := twoCells +
		"Cell 03 - Address: AA:BB:CC:DD:EE:03\nChannel:149\nFrequency:5.745 GHz (Channel 149)\n" +
		"Quality=70/70  Signal level=-101 dBm\nESSID:\"a rather long network name\"\n"
	scan := parse(t, text)

	for _, keys := range []string{"aefqcl", "lcqfea", "el", "le"} {
		for _, omit := range []bool{false, true} {
			got := renderString(t, render.Table, scan, render.Options{Show: show(keys), OmitLabels: omit})
			lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
			want := columnStarts(lines[0])
			require.Len(t, want, len(keys), "%s omit=%v: %q", keys, omit, lines[0])
			for _, line := range lines[1:] {
				assert.Equal(t, want, columnStarts(line), "%s omit=%v: %q", keys, omit, line)
			}
		}
	}
}

func TestTableIsIdempotent(t *testing.T) {
	t.Parallel()

	scan := parse(t, twoCells)
	opts := render.Options{Show: show("aefqcl"), Widths: scan.Widths}
	var first, second bytes.Buffer
	require.NoError(t, render.Write(&first, render.Table, scan.Cells, opts))
	require.NoError(t, render.Write(&second, render.Table, scan.Cells, opts))
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, cell.DefaultWidths().Get(cell.Level), scan.Widths.Get(cell.Level))
}

func TestOption(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.Option, parse(t, twoCells), render.Options{Show: show("a")})
	assert.Equal(t, "<option>Home</option>\n<option>Guest</option>\n", got)
}

func TestOptionIsNotEscaped(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.Option, parse(t, "Address: 1\nESSID:\"<b>&co\"\n"), render.Options{})
	assert.Equal(t, "<option><b>&co</option>\n", got)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.JSON, parse(t, twoCells), render.Options{Show: show("ec")})
	want := `[
  {
    "essid": "Home",
    "channel": "6"
  },
  {
    "essid": "Guest",
    "channel": "11"
  }
]
`
	assert.Equal(t, want, got)
}

func TestJSONOmitsMissingFields(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.JSON, parse(t, "Address: 1\nESSID:\"x\"\n"), render.Options{Show: show("ace")})
	assert.Equal(t, "[\n  {\n    \"address\": \"1\",\n    \"essid\": \"x\"\n  }\n]\n", got)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	got := renderString(t, render.YAML, parse(t, twoCells), render.Options{Show: show("ecl")})
	assert.True(t, strings.HasPrefix(got, "- essid: Home\n"), got)

	var docs []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(got), &docs))
	assert.Equal(t, []map[string]string{
		{"essid": "Home", "channel": "6", "level": "-60"},
		{"essid": "Guest", "channel": "11", "level": "-70"},
	}, docs)

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(got), &node))
	first := node.Content[0].Content[0]
	assert.Equal(t, "essid", first.Content[0].Value)
	assert.Equal(t, "channel", first.Content[2].Value)
	assert.Equal(t, "!!str", first.Content[3].Tag)
}
