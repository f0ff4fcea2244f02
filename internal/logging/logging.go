// Package logging configures logrus for the CLI and adapts it to the
// planning engine's Logger interface.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger for the given level and environment. Production and
// staging get JSON output; everything else gets human-readable text.
// An unknown level falls back to info and is reported once.
func New(level, environment string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(out)

	switch strings.ToLower(environment) {
	case "production", "staging":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("invalid log level %q, defaulting to info", level)
	} else {
		log.SetLevel(parsed)
	}

	log.Debugf("log level %s, environment %s", log.GetLevel(), environment)
	return log
}

// EngineLogger adapts a logrus entry to calculation.Logger.
type EngineLogger struct {
	entry *logrus.Entry
}

// NewEngineLogger tags every line with component=engine.
func NewEngineLogger(log *logrus.Logger) *EngineLogger {
	return &EngineLogger{entry: log.WithField("component", "engine")}
}

func (l *EngineLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *EngineLogger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *EngineLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *EngineLogger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
