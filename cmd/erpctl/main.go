package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	cmd := newRootCmd(a)
	if err := cmd.ExecuteContext(ctx); err != nil {
		a.reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
