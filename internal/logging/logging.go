// Package logging builds the diagnostic logger used for stage progress.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where diagnostic logs go.
type Options struct {
	// Verbose sends logs to Stderr.
	Verbose bool

	// File, when set, receives logs through a rotating writer.
	File string

	// Stderr overrides os.Stderr.
	Stderr io.Writer
}

// Logger wraps log.Logger with the closers of its outputs.
type Logger struct {
	*log.Logger
	closers []io.Closer
}

// New returns a logger writing to every output selected in opts. With no
// output selected, logs are discarded.
func New(opts Options) *Logger {
	var writers []io.Writer
	var closers []io.Closer

	if opts.Verbose {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writers = append(writers, stderr)
	}

	if opts.File != "" {
		logFile := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writers = append(writers, logFile)
		closers = append(closers, logFile)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	return &Logger{
		Logger:  log.New(out, "[fmtsetup] ", log.LstdFlags),
		closers: closers,
	}
}

// Close releases file outputs.
func (l *Logger) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
