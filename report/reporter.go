// Package report is responsible for displaying errors, warnings, and other
// kinds of messages to the user during program execution.  The package
// respects the set log level and is synchronized: its functions can be
// safely called from multiple goroutines.
package report

import "sync"

// reporter holds the shared reporting state.
type reporter struct {
	// The mutex used to synchronize display calls.
	m *sync.Mutex

	// The selected log level.  This must be one of the enumerated log
	// levels below.
	logLevel int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no diagnostic output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// rep is the global reporter instance.
var rep = &reporter{
	m:        &sync.Mutex{},
	logLevel: LogLevelVerbose,
}

// InitReporter initializes the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
}

// enabled returns whether messages at the given log level should display.
func enabled(logLevel int) bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.logLevel >= logLevel
}
