// Package output provides terminal output utilities for the mkwd CLI.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. SetupLogging replaces it once the
// verbosity is known; until then it logs at the default level without
// timestamps.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// SetupLogging configures the logger based on verbosity. Verbose runs log at
// debug level with timestamps and caller locations.
func SetupLogging(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		ReportCaller:    verbose,
	})
}

// Debug logs a debug message with key-value context.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Warn logs a warning with key-value context.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Print writes a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println writes a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
