// Package logging configures the process logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to out at level. An unparsable level
// falls back to warn and is reported through the logger itself.
func New(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.SetLevel(logrus.WarnLevel)
		logger.Warnf("invalid log level %s, defaulting to warn", level)
		return logger
	}
	logger.SetLevel(parsed)
	return logger
}
