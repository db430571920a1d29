package planner

import (
	"github.com/hashicorp/go-hclog"
)

// Logger is the planner's structured logging sink, configured once
// before planning starts. It is an explicit dependency threaded through
// Config, never a package-level singleton.
type Logger = hclog.Logger

// NewNullLogger returns a Logger that discards everything, the Config
// default.
func NewNullLogger() Logger {
	return hclog.NewNullLogger()
}

// NewLogger returns a named, leveled Logger writing structured output,
// for callers who want planner activity on stderr instead of silence.
func NewLogger(name string, level hclog.Level) Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: level,
	})
}
