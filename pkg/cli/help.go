package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdsohelmia/blaze/pkg/console"
)

const helpText = `Blaze-Downloader CLI HELP:
This CLI program is used to download files from the internet, just pass it a url.

USAGE:
run with: <url> <flags>`

// HandleHelp prints the help text when the help flag is set and reports
// whether it did. The caller should stop when it returns true.
func HandleHelp(c *Config, w io.Writer) bool {
	if !c.Has(FlagHelp) {
		return false
	}
	WriteHelp(w)
	return true
}

// WriteHelp writes the usage banner and the numbered flag list.
func WriteHelp(w io.Writer) {
	color := console.Colorize(w)
	lines := make([]string, 0, len(Flags))
	for i, entry := range Flags {
		lines = append(lines, color.Color(fmt.Sprintf("[blue]%d.[reset] [green]%s[reset] | [green]%s[reset]: %s",
			i+1, entry.Long, entry.Short, entry.Description)))
	}
	fmt.Fprintf(w, "%s\n\n%s:\n%s\n\n", helpText, color.Color("[blue]Flags"), strings.Join(lines, "\n"))
}
