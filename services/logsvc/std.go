// Package logsvc provides the core.Logger implementations: a plain stdlib
// logger for local runs and a rollbar-backed one for error reporting from
// deployed clients.
package logsvc

import (
	"log"

	"github.com/darasa/darasa-go/core"
)

type StdLogger struct {
	std     *log.Logger
	debug   bool
	enabled bool
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger, conf *core.Config) *StdLogger {
	return &StdLogger{std: std, debug: conf.Debug, enabled: true}
}

func (l *StdLogger) Enable(enabled bool) { l.enabled = enabled }

func (l *StdLogger) print(level, msg string, args []interface{}) {
	if !l.enabled {
		return
	}
	l.std.Printf("%s: %s", level, msg)
	for _, arg := range args {
		l.std.Printf("%+v", arg)
	}
}

func (l *StdLogger) Debug(msg string, args ...interface{}) {
	if l.debug {
		l.print("DEBUG", msg, args)
	}
}

func (l *StdLogger) Info(msg string, args ...interface{}) { l.print("INFO", msg, args) }

func (l *StdLogger) Warn(msg string, args ...interface{}) { l.print("WARN", msg, args) }

func (l *StdLogger) Error(msg string, args ...interface{}) { l.print("ERROR", msg, args) }

func (l *StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
