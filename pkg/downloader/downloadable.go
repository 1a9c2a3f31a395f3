package downloader

import (
	"errors"
	"net/url"
)

// Downloadable is a URL that passed validation and is ready to be fetched.
// The zero value is not usable; build one with ParseDownloadable.
type Downloadable struct {
	url *url.URL
}

// ParseDownloadable validates raw as an absolute URL.
func ParseDownloadable(raw string) (Downloadable, error) {
	u, err := url.Parse(raw)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return Downloadable{}, NewProgramError("Failed to parse url: %w", err)
	}
	if !u.IsAbs() {
		return Downloadable{}, NewProgramError("Failed to parse url: %w", errRelativeURL)
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return Downloadable{}, NewProgramError("Failed to parse url: %w", errEmptyHost)
	}
	return Downloadable{url: u}, nil
}

var (
	errRelativeURL = errors.New("relative URL without a base")
	errEmptyHost   = errors.New("empty host")
)

// URL returns a copy of the parsed URL.
func (d Downloadable) URL() *url.URL {
	if d.url == nil {
		return nil
	}
	u := *d.url
	return &u
}

func (d Downloadable) String() string {
	if d.url == nil {
		return ""
	}
	return d.url.String()
}
