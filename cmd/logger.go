package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/viant/shamir/config"
)

// newLogger builds the process logger; each -v raises the configured level
// by one step, up to debug.
func newLogger(cfg *config.Log, verbosity int, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level := logrus.WarnLevel
	if cfg != nil && cfg.Level != "" {
		if parsed, err := logrus.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}
	for ; verbosity > 0 && level < logrus.DebugLevel; verbosity-- {
		level++
	}
	logger.SetLevel(level)
	return logger
}
