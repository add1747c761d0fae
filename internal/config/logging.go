package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the service logger: JSON formatted, level from config.
func NewLogger(level string) *logrus.Logger {
	logg := logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logg.SetLevel(lvl)

	return logg
}

// LogError records an error with the standard module/function fields.
func LogError(logger *logrus.Logger, moduleName, funcName, context string, err error) {
	logger.WithFields(logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}).Error(err.Error())
}
