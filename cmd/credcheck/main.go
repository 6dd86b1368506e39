package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/beltic/credcheck/internal/adapters/inbound/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// The first signal cancels the run. Restoring the default handlers then
	// lets a second one kill the process while a file is still being read.
	go func() {
		<-ctx.Done()
		stop()
	}()
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
