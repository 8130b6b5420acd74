// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger instance. It must be initialized with Init()
// before any other package uses it.
var Log = logrus.New()

// Init configures the global logger. Output goes to stdout as JSON so that
// log collectors can parse the structured fields.
func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}
