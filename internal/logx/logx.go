// Package logx sets up the diagnostic logger shared by commands.
package logx

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing text records without timestamps to w.
// Debug records are emitted only when verbose is set.
func New(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
