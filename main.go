// ircd - a minimal line-oriented IRC server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ircd/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ircd: %v\n", err)
		os.Exit(1)
	}
}
