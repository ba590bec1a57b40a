// Package logging builds the named, leveled loggers shared by the backend,
// the gateway and the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Options controls logger construction.
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// ParseLevel converts a level name to an hclog.Level.
// Unlike hclog.LevelFromString it rejects unknown names.
func ParseLevel(level string) (hclog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return hclog.Trace, nil
	case "debug":
		return hclog.Debug, nil
	case "", "info":
		return hclog.Info, nil
	case "warning", "warn":
		return hclog.Warn, nil
	case "error":
		return hclog.Error, nil
	default:
		return hclog.NoLevel, fmt.Errorf("invalid log level: %s. must be one of trace, debug, info, warn, error", level)
	}
}

// New returns a root logger with the given name.
func New(name string, opts Options) (hclog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
	}), nil
}
