package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders through a renderer bound to one writer, so text written to
// a pipe or file stays plain.
type styles struct {
	err    lipgloss.Style
	notice lipgloss.Style
	key    lipgloss.Style
	output lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		err:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		notice: r.NewStyle().Foreground(lipgloss.Color("214")),
		key:    r.NewStyle().Foreground(lipgloss.Color("39")),
		output: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
