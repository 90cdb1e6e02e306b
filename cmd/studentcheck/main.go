// Command studentcheck validates student registrations and Brazilian CPF
// numbers from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newCLI(os.Stdin, os.Stdout, os.Stderr, nil)
	if err := newRootCommand(c).ExecuteContext(ctx); err != nil {
		// Invalid data was already reported on stdout.
		if !errors.Is(err, errInvalidData) {
			fmt.Fprintf(os.Stderr, "studentcheck: %v\n", err)
		}
		return 1
	}
	return 0
}
