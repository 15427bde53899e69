package config

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/boardgen/errors"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the config package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the config package's logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Logger builds the zap logger described by the log section. Development
// loggers print human readable lines; production ones emit JSON.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindConfiguration).
			Path(KeyLogLevel).
			Cause(err).
			Detail("invalid log level %q", c.Log.Level).
			Build()
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
