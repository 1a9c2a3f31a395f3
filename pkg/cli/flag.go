// Package cli turns raw process arguments into a Config and renders help.
package cli

import "github.com/mdsohelmia/blaze/pkg/downloader"

type Flag int

const (
	FlagHelp Flag = iota
	FlagDebug
)

// FlagSpec is one row of the flag registry.
type FlagSpec struct {
	Long        string
	Short       string
	Flag        Flag
	Description string
}

// Flags is the full registry, in the order help lists them. Every Flag
// constant has exactly one entry.
var Flags = []FlagSpec{
	{"--help", "-h", FlagHelp, "Show CLI help. No files are downloaded."},
	{"--debug", "-d", FlagDebug, "Log HTTP requests, disk space and chunk progress, and dump the parsed arguments."},
}

func (f Flag) String() string {
	for _, entry := range Flags {
		if entry.Flag == f {
			return entry.Long
		}
	}
	return "unknown"
}

func lookupFlag(s string) (Flag, error) {
	for _, entry := range Flags {
		if entry.Long == s || entry.Short == s {
			return entry.Flag, nil
		}
	}
	return 0, downloader.NewProgramError("%s is not a valid flag", s)
}
