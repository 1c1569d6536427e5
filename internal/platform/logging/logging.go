// Package logging builds the structured loggers used across the module.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Format is a logging format
type Format string

const (
	// FormatLogfmt is the "logfmt" logging format
	FormatLogfmt Format = "logfmt"

	// FormatJSON is the JSON logging format
	FormatJSON Format = "json"
)

// New creates a leveled logger writing to w
func New(w io.Writer, format, lvl string) (log.Logger, error) {
	var logger log.Logger
	switch Format(strings.ToLower(format)) {
	case FormatLogfmt, "":
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	case FormatJSON:
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	default:
		return nil, fmt.Errorf("logging: invalid log format: '%s'", format)
	}

	option, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}

	logger = level.NewFilter(logger, option)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	return logger, nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "info", "":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("logging: invalid log level: '%s'", lvl)
	}
}
