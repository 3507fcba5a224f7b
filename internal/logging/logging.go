package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. debug selects the development config and
// forces debug level; otherwise level (e.g. "info", "warn") applies.
// Logs go to stderr so report output on stdout stays clean.
func New(level string, debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		lvl := zapcore.WarnLevel
		if level != "" {
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", level, err)
			}
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
