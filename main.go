package main

import (
	"context"
	"os"

	"github.com/mdsohelmia/blaze/pkg/console"
	"github.com/mdsohelmia/blaze/pkg/downloader"
)

func main() {
	ctx := context.Background()
	if console.IsTerminal(os.Stdout) {
		// cosmetic, a failure leaves the screen as it is
		_ = console.ClearTerminal(ctx)
	}

	app := newApp(environment{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		rootPath: downloader.DefaultRootPath,
	})
	if err := app.RunContext(ctx, os.Args); err != nil {
		reportError(os.Stderr, err)
		os.Exit(int(downloader.ExitFailure))
	}
}
