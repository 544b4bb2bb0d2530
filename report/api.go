package report

import (
	"fmt"
	"os"
)

// ReportWarning reports a warning.
func ReportWarning(msg string, args ...interface{}) {
	if enabled(LogLevelWarn) {
		displayWarning(fmt.Sprintf(msg, args...))
	}
}

// ReportFatal reports a fatal error and exits the program.  It also
// automatically formats error messages as necessary.
func ReportFatal(msg string, args ...interface{}) {
	displayError(fmt.Sprintf(msg, args...))
	os.Exit(1)
}

// DisplayInfoMessage displays a tagged informational message.  This is used
// for the tool's primary output and so displays regardless of log level.
func DisplayInfoMessage(tag, msg string) {
	displayInfo(tag, msg)
}

// LogVerbose displays a tagged message only when the log level is verbose.
func LogVerbose(tag, msg string) {
	if enabled(LogLevelVerbose) {
		displayInfo(tag, msg)
	}
}
