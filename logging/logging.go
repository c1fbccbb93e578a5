package logging

import (
	"github.com/sirupsen/logrus"
)

// The shared logger instance. Packages grab it once in their init and the
// level set by InitLogger applies to everyone because it is the same object.
var logger = logrus.New()

// InitLogger configures the shared logger. Call it once from main before
// anything interesting happens; calling it again just resets the level.
func InitLogger(level logrus.Level) {
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// GetLogger returns the shared logger.
func GetLogger() *logrus.Logger {
	return logger
}
