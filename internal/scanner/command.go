package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultCommand is the wireless tool run when no command is configured.
const DefaultCommand = "iwlist"

// CommandError reports a scan command that ran but exited non-zero.
type CommandError struct {
	Args     []string
	ExitCode int
	// Output is what the command wrote to stderr.
	Output []byte
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
}

// CommandBackend runs "<Command> [iface] scan" and returns its stdout.
type CommandBackend struct {
	Command string
}

// Args returns the argument vector run for iface, command name included.
func (b CommandBackend) Args(iface string) []string {
	name := b.Command
	if name == "" {
		name = DefaultCommand
	}
	if iface == "" {
		return []string{name, "scan"}
	}
	return []string{name, iface, "scan"}
}

func (b CommandBackend) Scan(ctx context.Context, iface string) ([]byte, error) {
	args := b.Args(iface)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running scan command", "command", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CommandError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Output:   stderr.Bytes(),
			}
		}
		return nil, fmt.Errorf("run %s: %w", args[0], err)
	}
	if stderr.Len() > 0 {
		slog.Debug("scan command wrote to stderr", "output", strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
