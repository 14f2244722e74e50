package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. JSON output so log lines stay
// machine-parseable; level comes from LOG_LEVEL (default info).
func New() *logrus.Logger {
	logg := logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logg.SetLevel(level)

	return logg
}
