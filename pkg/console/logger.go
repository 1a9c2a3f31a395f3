package console

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the CLI logger writing to w. Debug lowers the level so
// HTTP and chunk progress lines show up.
func NewLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      IsTerminal(w),
		DisableColors:    !IsTerminal(w),
	})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
