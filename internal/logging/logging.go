// Package logging builds the structured logger shared by the terrain tools.
// Console output goes through charmbracelet/log; an optional log file is
// rotated by lumberjack.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/terrain-synth/internal/config"
)

// Prefix is printed in front of every log line.
const Prefix = "terrain"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger writing to console and, when cfg.File is set, to a
// rotating log file. The returned Closer releases the file.
func New(cfg config.LoggingConfig, console io.Writer) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var closer io.Closer = nopCloser{}
	out := console
	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		closer = fileWriter
		if console != nil {
			out = io.MultiWriter(console, fileWriter)
		} else {
			out = fileWriter
		}
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// ParseLevel converts a level name. Empty means info.
func ParseLevel(level string) (log.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q", level)
	}
	return lvl, nil
}
