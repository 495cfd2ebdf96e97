package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/log"
)

var ErrLogLevelUnknown = errors.New("log level is unknown")

// ParseLogLevel parses the log level given on the command line,
// where verbose is an alias for debug.
func ParseLogLevel(s string) (level log.Level, err error) {
	levels := map[string]log.Level{
		"verbose": log.LevelDebug,
		"debug":   log.LevelDebug,
		"info":    log.LevelInfo,
		"warning": log.LevelWarn,
		"error":   log.LevelError,
	}
	level, ok := levels[strings.ToLower(s)]
	if !ok {
		return level, fmt.Errorf("%w: %q must be one of verbose, debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
	return level, nil
}
