package cli

import (
	"strings"

	"github.com/mdsohelmia/blaze/pkg/downloader"
)

// Config is the parsed command line.
type Config struct {
	flags         []Flag
	downloadables []downloader.Downloadable
}

// Parse reads args (without the program name). Tokens starting with a dash
// are flags, everything else is a URL. The first bad token fails the parse.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	for _, arg := range args {
		arg = strings.ToLower(strings.TrimSpace(arg))
		if strings.HasPrefix(arg, "-") {
			flag, err := lookupFlag(arg)
			if err != nil {
				return nil, err
			}
			c.flags = append(c.flags, flag)
			continue
		}
		d, err := downloader.ParseDownloadable(arg)
		if err != nil {
			return nil, err
		}
		c.downloadables = append(c.downloadables, d)
	}
	return c, nil
}

func (c *Config) Flags() []Flag {
	return append([]Flag(nil), c.flags...)
}

func (c *Config) Has(flag Flag) bool {
	for _, f := range c.flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Downloadables returns the targets still held by c.
func (c *Config) Downloadables() []downloader.Downloadable {
	return append([]downloader.Downloadable(nil), c.downloadables...)
}

// TakeDownloadables hands the targets to the caller and clears them from c.
func (c *Config) TakeDownloadables() []downloader.Downloadable {
	d := c.downloadables
	c.downloadables = nil
	return d
}
