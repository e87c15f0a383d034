package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thoscut/iwscan/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		return cli.ReportError(os.Stderr, err)
	}
	return 0
}
