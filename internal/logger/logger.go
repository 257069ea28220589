// Package logger sets up file-backed logging for the TUI. Writing to
// stdout would corrupt the Bubble Tea screen, so everything goes to a
// log file next to the working directory.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
		DisableColors:   true,
	})
}

// Setup redirects logrus output to the named file and returns a closer.
// On failure logging is discarded rather than aborting the program.
func Setup(path string) func() {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return func() {}
	}
	logrus.SetOutput(f)
	return func() { _ = f.Close() }
}

// With returns an entry tagged with the originating component.
func With(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
