package downloader

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/sirupsen/logrus"
)

// Downloader fetches one Downloadable and saves it under the root path.
type Downloader struct {
	target         Downloadable
	originUrl      string
	filename       string
	rootPath       string
	copyBufferSize int
	client         *http.Client
	// bytes written to disk
	size   int64
	names  *nameRegistry
	log    *logrus.Entry
	bar    *progressbar.ProgressBar
	Hook   Hook
	debug  bool
}

// NewDownloader creates a Downloader for target. Zero fields in config get
// their defaults; a nil config is allowed.
func NewDownloader(target Downloadable, config *Config) *Downloader {
	return newDownloader(target, config.withDefaults(), nil)
}

func newDownloader(target Downloadable, config *Config, names *nameRegistry) *Downloader {
	return &Downloader{
		target:         target,
		rootPath:       config.RootPath,
		copyBufferSize: config.CopyBufferSize,
		client:         config.Client,
		names:          names,
		log:            config.Logger.WithField("url", target.String()),
		Hook:           config.Hook,
		debug:          config.Debug,
	}
}

// Download fetches the URL and streams the body to disk.
func (d *Downloader) Download(ctx context.Context) error {
	if d.target.url == nil {
		return NewProgramError("Failed to fetch: empty url")
	}
	d.log.Info("downloading")

	resp, err := d.get(ctx)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := d.ensureRootPath(); err != nil {
		return err
	}
	d.checkFreeSpace(resp.ContentLength)

	d.originUrl = resp.Request.URL.String()
	d.filename = d.names.Reserve(detectFilename(resp.Request.URL, d.target.String()))

	f, err := os.Create(d.GetPath())
	if err != nil {
		return NewProgramError("Failed to create file %s: %w", d.GetPath(), err)
	}
	defer f.Close()

	if err := d.stream(resp, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return NewProgramError("Failed to write %s: %w", d.GetPath(), err)
	}

	d.log.WithFields(logrus.Fields{
		"path": d.GetPath(),
		"size": bytesize.New(float64(d.size)).String(),
	}).Info("saved")
	return nil
}

func (d *Downloader) get(ctx context.Context) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, d.target.String(), nil)
	if err != nil {
		return nil, NewProgramError("Failed to fetch %s: %w", d.target, err)
	}

	resp, err := d.client.Do(request)
	if err != nil {
		return nil, NewProgramError("Failed to fetch %s: %w", d.target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, NewProgramError("Failed to fetch %s: %w", d.target, &StatusError{Code: resp.StatusCode, Status: resp.Status})
	}
	return resp, nil
}

// ensure the root path exists or create it.
func (d *Downloader) ensureRootPath() error {
	if err := os.MkdirAll(d.rootPath, os.ModePerm); err != nil {
		return NewProgramError("Failed to create directory %s: %w", d.rootPath, err)
	}
	return nil
}

func (d *Downloader) checkFreeSpace(length int64) {
	if !d.debug {
		return
	}
	usage, err := disk.Usage(d.rootPath)
	if err != nil {
		d.log.WithError(err).Debug("disk usage unavailable")
		return
	}
	entry := d.log.WithField("free", bytesize.New(float64(usage.Free)).String())
	if length > 0 && uint64(length) > usage.Free {
		entry.Warn("response is larger than the free space left")
		return
	}
	entry.Debug("disk space")
}

func (d *Downloader) stream(resp *http.Response, f io.Writer) error {
	d.bar = progressbar.DefaultBytesSilent(resp.ContentLength, d.filename)
	out := io.MultiWriter(f, d.bar)
	buffer := make([]byte, d.copyBufferSize)

	for {
		n, readErr := resp.Body.Read(buffer)
		if n > 0 {
			written, err := out.Write(buffer[:n])
			d.size += int64(written)
			if err != nil {
				_ = d.callHook(resp, err)
				return NewProgramError("Failed to write %s: %w", d.GetPath(), err)
			}
			if err := d.callHook(resp, nil); err != nil {
				return NewProgramError("Download of %s aborted: %w", d.target, err)
			}
		}
		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			_ = d.callHook(resp, readErr)
			return NewProgramError("Failed to read body of %s: %w", d.target, readErr)
		}
	}
}

func (d *Downloader) callHook(resp *http.Response, err error) error {
	if d.Hook == nil {
		return nil
	}
	return d.Hook(resp, d.bar, err)
}

// GetFileSize returns the number of bytes written so far.
func (d *Downloader) GetFileSize() int64 {
	return d.size
}

func (d *Downloader) GetFilename() string {
	return d.filename
}

// GetPath is empty until the response has been received.
func (d *Downloader) GetPath() string {
	if d.filename == "" {
		return ""
	}
	return filepath.Join(d.rootPath, d.filename)
}

// GetOriginUrl returns the final URL after redirects.
func (d *Downloader) GetOriginUrl() string {
	return d.originUrl
}

func (d *Downloader) SetHook(hook Hook) {
	d.Hook = hook
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return "unexpected status " + e.Status
}
