package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// New builds the process logger. verbose forces debug level whatever level says.
func New(level string, verbose bool, environment string) *log.Logger {
	l := log.New()
	l.SetOutput(os.Stdout)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	l.SetLevel(lvl)

	if environment == "production" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return l
}

// Discard returns a logger that drops everything, used by tests and the CLI report command.
func Discard() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
