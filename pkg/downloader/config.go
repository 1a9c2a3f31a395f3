package downloader

import (
	"context"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRootPath       = "downloads"
	DefaultCopyBufferSize = 32 * 1024
)

type Config struct {
	RootPath       string
	CopyBufferSize int
	Debug          bool
	// Client overrides the HTTP client built from the other fields.
	Client *http.Client
	Logger *logrus.Logger
	Hook   Hook
}

func (c *Config) withDefaults() *Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.RootPath == "" {
		out.RootPath = DefaultRootPath
	}
	if out.CopyBufferSize <= 0 {
		out.CopyBufferSize = DefaultCopyBufferSize
	}
	if out.Logger == nil {
		out.Logger = logrus.New()
		out.Logger.SetOutput(io.Discard)
	}
	if out.Client == nil {
		out.Client = newHTTPClient(out.Logger, out.Debug)
	}
	return &out
}

// newHTTPClient builds a single-attempt client. Non-2xx responses are
// handed back to the caller instead of being turned into retry errors.
func newHTTPClient(logger *logrus.Logger, debug bool) *http.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.CheckRetry = noRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if debug {
		client.Logger = logger.WithField("component", "http")
	} else {
		client.Logger = nil
	}
	return client.StandardClient()
}

func noRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, nil
}
