// Package lanscan: pluggable debug logging.
package lanscan

import "sync"

// DebugLevel controls debug logging verbosity.
type DebugLevel int

const (
	// DebugOff disables all debug logging.
	DebugOff DebugLevel = iota
	// DebugBasic logs stage starts, completions and candidate counts.
	DebugBasic
	// DebugVerbose additionally logs per-line parse decisions.
	DebugVerbose
)

// DebugLogger is a callback for debug logging. The stage parameter
// identifies which discovery technique produced the message.
type DebugLogger func(stage Stage, format string, args ...interface{})

var (
	debugLogger DebugLogger
	debugLevel  DebugLevel
	debugMu     sync.RWMutex
)

// SetDebugLogger installs a debug logging callback. Pass nil to disable.
func SetDebugLogger(logger DebugLogger) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugLogger = logger
}

// SetDebugLevel sets the debug verbosity level.
func SetDebugLevel(level DebugLevel) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugLevel = level
}

func debugLog(stage Stage, format string, args ...interface{}) {
	debugMu.RLock()
	logger := debugLogger
	level := debugLevel
	debugMu.RUnlock()

	if logger != nil && level >= DebugBasic {
		logger(stage, format, args...)
	}
}

func debugLogVerbose(stage Stage, format string, args ...interface{}) {
	debugMu.RLock()
	logger := debugLogger
	level := debugLevel
	debugMu.RUnlock()

	if logger != nil && level >= DebugVerbose {
		logger(stage, format, args...)
	}
}
