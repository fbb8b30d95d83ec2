// Package log builds the slog handler used by the dotpath command.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Log formats accepted by [CreateHandler].
const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

const (
	// EnvLevel overrides the default log level.
	EnvLevel = "DOTPATH_LOG_LEVEL"
	// EnvFormat overrides the default log format.
	EnvFormat = "DOTPATH_LOG_FORMAT"

	// DefaultLevel is used when [EnvLevel] is unset.
	DefaultLevel = "warn"
	// DefaultFormat is used when [EnvFormat] is unset.
	DefaultFormat = FormatText
)

// ErrInvalidArgument is returned for an unknown level or format.
var ErrInvalidArgument = errors.New("invalid argument")

// CreateHandler creates a [slog.Handler] writing to w.
func CreateHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %w", ErrInvalidArgument, err)
	}

	var formatter charmlog.Formatter

	switch strings.ToLower(format) {
	case FormatText, "":
		formatter = charmlog.TextFormatter
	case FormatLogfmt:
		formatter = charmlog.LogfmtFormatter
	case FormatJSON:
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidArgument, format)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

// LevelFromEnv returns the level configured in the environment, or
// [DefaultLevel].
func LevelFromEnv() string {
	if v := os.Getenv(EnvLevel); v != "" {
		return v
	}

	return DefaultLevel
}

// FormatFromEnv returns the format configured in the environment, or
// [DefaultFormat].
func FormatFromEnv() string {
	if v := os.Getenv(EnvFormat); v != "" {
		return v
	}

	return DefaultFormat
}
