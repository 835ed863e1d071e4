package log

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	// RunField carries the identifier of a single load run.
	RunField = "run"
	// StageField names the plan stage a record belongs to.
	StageField = "stage"
	// TableField names the destination table.
	TableField = "table"
)

// Log is the application wide diagnostic logger
var Log = logrus.NewEntry(logrus.StandardLogger())

func init() {
	Log.Logger.SetOutput(os.Stderr)
	logLevelFromEnv()
}

func logLevelFromEnv() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return
	}

	newLevel, err := logrus.ParseLevel(level)
	if err == nil {
		Log.Logger.SetLevel(newLevel)
	}
}

// Init configures the application-wide logger. An explicit level wins over LOG_LEVEL.
func Init(level string, json bool) error {
	Log = logrus.NewEntry(logrus.StandardLogger())

	if json {
		Log.Logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		})
	} else {
		Log.Logger.SetFormatter(&logrus.TextFormatter{})
	}

	logLevelFromEnv()

	if level == "" {
		return nil
	}
	newLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Log.Logger.SetLevel(newLevel)
	return nil
}

// WithRun tags every subsequent entry with the run identifier.
func WithRun(runID string) {
	Log = Log.WithField(RunField, runID)
}
