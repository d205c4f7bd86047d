package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New - логгер приложения с уровнем из конфигурации
func New(level string) *logrus.Entry {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Level = logrus.InfoLevel

	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			logger.WithError(err).Warn("Unknown log level, using info")
		} else {
			logger.Level = parsed
		}
	}

	return logrus.NewEntry(logger).WithField("app", "scicalc")
}
