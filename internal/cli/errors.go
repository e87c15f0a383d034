package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thoscut/iwscan/internal/scanner"
)

// ReportError prints err to w and returns the process exit status for it.
// A failed scan command passes its own exit status through, along with the
// command line and what it printed; everything else exits 1.
func ReportError(w io.Writer, err error) int {
	st := newStyles(w)

	var cmdErr *scanner.CommandError
	if errors.As(err, &cmdErr) {
		fmt.Fprintln(w, st.err.Render("error:"), "scan command failed:", strings.Join(cmdErr.Args, " "))
		if out := strings.TrimRight(string(cmdErr.Output), "\n"); out != "" {
			for _, line := range strings.Split(out, "\n") {
				fmt.Fprintln(w, st.output.Render(line))
			}
		}
		if cmdErr.ExitCode > 0 {
			return cmdErr.ExitCode
		}
		return 1
	}

	fmt.Fprintln(w, st.err.Render("error:"), err)
	return 1
}
