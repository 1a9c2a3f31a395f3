package downloader

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one download in a batch.
type Result struct {
	Target Downloadable
	Path   string
	Size   int64
	Err    error
}

// Batch runs several downloads concurrently with shared settings.
type Batch struct {
	config *Config
}

func NewBatch(config *Config) *Batch {
	return &Batch{config: config.withDefaults()}
}

// Run starts every download at once and waits for all of them. A failed
// download does not stop the others. Results are in the order of targets.
func (b *Batch) Run(ctx context.Context, targets []Downloadable) []Result {
	results := make([]Result, len(targets))
	names := newNameRegistry()

	var g errgroup.Group
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			d := newDownloader(target, b.config, names)
			err := d.Download(ctx)
			if err != nil {
				d.log.WithError(err).Error("failed")
			}
			results[i] = Result{
				Target: target,
				Path:   d.GetPath(),
				Size:   d.GetFileSize(),
				Err:    err,
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

type ExitCode int

const (
	ExitOK             ExitCode = 0
	ExitPartialFailure ExitCode = 1
	ExitFailure        ExitCode = 2
	ExitUsage          ExitCode = 64
)

// Summarize maps batch results to a process exit code.
func Summarize(results []Result) ExitCode {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	switch {
	case failed == 0:
		return ExitOK
	case failed == len(results):
		return ExitFailure
	default:
		return ExitPartialFailure
	}
}
