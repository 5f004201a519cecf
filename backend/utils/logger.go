package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger инициализирует и возвращает логгер
func InitLogger() *logrus.Logger {
	logger := logrus.New()

	// Output to stdout instead of the default stderr
	logger.Out = os.Stdout

	// Set JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Log level can be changed depending on environment
	logger.SetLevel(logrus.InfoLevel)

	return logger
}
