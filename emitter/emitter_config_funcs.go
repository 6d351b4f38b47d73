package emitter

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

const defaultProgramName = "prog"

// Config holds the settings shared by all backends
type Config struct {
	logger      *slog.Logger
	sourceName  string
	programName string
}

// ConfigureEmitterFunc is used when configuring an Emitter
type ConfigureEmitterFunc func(cfg *Config)

func newConfig(configs ...ConfigureEmitterFunc) *Config {
	cfg := &Config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, configure := range configs {
		configure(cfg)
	}

	return cfg
}

// ProgramName is the name used in help when the process arguments do not
// provide one: the configured name, the stem of the source name, or "prog"
func (c *Config) ProgramName() string {
	if c.programName != "" {
		return c.programName
	}
	if c.sourceName != "" {
		base := filepath.Base(c.sourceName)
		if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
			return stem
		}
	}

	return defaultProgramName
}

// WithLogger sets the logger receiving debug output; nil discards it
func WithLogger(logger *slog.Logger) ConfigureEmitterFunc {
	return func(cfg *Config) {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		cfg.logger = logger
	}
}

// WithSourceName records the name of the specification in the generated header
func WithSourceName(name string) ConfigureEmitterFunc {
	return func(cfg *Config) {
		cfg.sourceName = filepath.Base(name)
	}
}

// WithProgramName sets the fallback program name used in generated help
func WithProgramName(name string) ConfigureEmitterFunc {
	return func(cfg *Config) {
		cfg.programName = name
	}
}
