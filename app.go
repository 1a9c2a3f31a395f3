package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/k0kubun/pp"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"

	blazecli "github.com/mdsohelmia/blaze/pkg/cli"
	"github.com/mdsohelmia/blaze/pkg/console"
	"github.com/mdsohelmia/blaze/pkg/downloader"
)

type environment struct {
	stdout   io.Writer
	stderr   io.Writer
	rootPath string
}

func newApp(env environment) *cli.App {
	return &cli.App{
		Name:            "blaze",
		Usage:           "download files from the internet",
		ArgsUsage:       "<url>... <flags>",
		HideHelp:        true,
		HideHelpCommand: true,
		SkipFlagParsing: true,
		Writer:          env.stdout,
		ErrWriter:       env.stderr,
		Action: func(c *cli.Context) error {
			code := run(c.Context, c.Args().Slice(), env)
			if code != downloader.ExitOK {
				return cli.Exit("", int(code))
			}
			return nil
		},
	}
}

func run(ctx context.Context, args []string, env environment) downloader.ExitCode {
	config, err := blazecli.Parse(args)
	if err != nil {
		reportError(env.stderr, err)
		return downloader.ExitUsage
	}
	debug := config.Has(blazecli.FlagDebug)
	if debug {
		pp.Fprintln(env.stderr, describe(config))
	}

	if blazecli.HandleHelp(config, env.stdout) {
		fmt.Fprintln(env.stdout, "END OF HELP SECTION")
		return downloader.ExitOK
	}

	targets := config.TakeDownloadables()
	if len(targets) == 0 {
		reportError(env.stderr, downloader.NewProgramError("No url given, run with --help for usage"))
		return downloader.ExitUsage
	}

	logger := console.NewLogger(env.stderr, debug)
	batchConfig := &downloader.Config{
		RootPath: env.rootPath,
		Debug:    debug,
		Logger:   logger,
	}
	if debug {
		batchConfig.Hook = progressHook(logger)
	}

	results := downloader.NewBatch(batchConfig).Run(ctx, targets)
	code := downloader.Summarize(results)
	if code == downloader.ExitOK {
		fmt.Fprintln(env.stdout, "DONE")
		return code
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	console.Yellow(env.stderr, fmt.Sprintf("%d of %d downloads failed", failed, len(results)))
	return code
}

func reportError(w io.Writer, err error) {
	console.Red(w, fmt.Sprintf("Error: %s \nExiting...", err))
}

type configDump struct {
	Flags []string
	URLs  []string
}

func describe(c *blazecli.Config) configDump {
	var dump configDump
	for _, f := range c.Flags() {
		dump.Flags = append(dump.Flags, f.String())
	}
	for _, d := range c.Downloadables() {
		dump.URLs = append(dump.URLs, d.String())
	}
	return dump
}

func progressHook(logger *logrus.Logger) downloader.Hook {
	return func(resp *http.Response, bar *progressbar.ProgressBar, err error) error {
		if err != nil {
			return nil
		}
		logger.WithFields(logrus.Fields{
			"url":   resp.Request.URL.String(),
			"bytes": cast.ToInt64(bar.State().CurrentBytes),
		}).Debug("chunk written")
		return nil
	}
}
