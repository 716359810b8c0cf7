// Command funtools is the MCP stdio tool host. It serves the fixed
// five-tool set (weather, books, jokes, dog pictures, trivia) to a client
// that spawns it as a subprocess, such as the weekender CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanamz/weekender/pkg/funtoolbox"
	"github.com/germanamz/weekender/pkg/tools/mcpserver"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := mcpserver.New("funtools", "0.1.0")
	s.Register(funtoolbox.New().Tools()...)

	if err := s.Serve(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
