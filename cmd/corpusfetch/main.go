// Command corpusfetch builds a RAG document corpus from public APIs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/corpusfetch/internal/adapters/driving/cli"
	"github.com/custodia-labs/corpusfetch/internal/app"
)

// version is set at build time via -ldflags "-X main.version=...".
var version string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServices(app.Services())

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
