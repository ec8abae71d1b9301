// Package logging builds the application logger.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger at the given level. Levels follow zap's
// names; an empty level means info. Diagnostics go to stderr so command
// output stays clean on stdout.
func NewLogger(level string, verbose bool) (logger *zap.Logger, err error) {
	parsed := zapcore.InfoLevel
	if level != "" {
		parsed, err = zapcore.ParseLevel(level)
		if err != nil {
			err = errors.Wrapf(err, "invalid log level: %s", level)
			return logger, err
		}
	}
	if verbose {
		parsed = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err = cfg.Build()
	if err != nil {
		err = errors.Wrap(err, "building logger")
		return logger, err
	}

	return logger, err
}
