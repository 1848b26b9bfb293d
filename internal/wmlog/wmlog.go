// Package wmlog is the manager's ambient logging facility. Per spec.md §7,
// everything below the two fatal setup paths is "log at debug level and
// continue"; this package gives that policy a single, consistently
// formatted call site, grounded on the leveled-logger idiom
// alexzeitgeist/cortile uses (logrus) for the same kind of per-event
// window-manager tracing.
package wmlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stderr)
	return l
}

// SetDebug raises or lowers the log level; wired to the manager's --debug flag.
func SetDebug(enabled bool) {
	if enabled {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// Debugf logs a recoverable-error, unknown-event, or unknown-atom condition.
// The handler that calls this always continues the event loop afterward.
func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// Fatalf prints "Error: <msg>" to diagnostic output and exits the process
// with status 1, per spec.md §4.10/§7's fatal-startup-error contract.
func Fatalf(format string, args ...any) {
	log.Errorf("Error: "+format, args...)
	os.Exit(1)
}
