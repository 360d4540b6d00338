// Package logging builds the structured logger shared by the services and
// the HTTP API.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/abdidvp/transformspec/internal/domain"
)

// Logger wraps logrus.Logger with the fields this tool logs by.
type Logger struct {
	*logrus.Logger
}

// New creates a logger writing to stderr with the configured level and
// format. An unknown level falls back to info.
func New(cfg domain.AppConfig) *Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(cfg domain.AppConfig, out io.Writer) *Logger {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &Logger{Logger: log}
}

// Discard returns a logger that drops everything. Used by tests and by
// commands whose stdout is machine-readable.
func Discard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Logger: log}
}

// WithKind adds the report kind to log entries.
func (l *Logger) WithKind(kind domain.DocumentKind) *logrus.Entry {
	return l.WithField("kind", kind)
}

// WithPath adds a file system path to log entries.
func (l *Logger) WithPath(path string) *logrus.Entry {
	return l.WithField("path", path)
}
