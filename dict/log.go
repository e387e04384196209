package dict

import (
	"log/slog"
	"sync/atomic"
)

var theLog atomic.Pointer[slog.Logger]

// SetLogger installs l as the package logger; nil restores slog.Default().
// The package logs only at debug level.
func SetLogger(l *slog.Logger) {
	theLog.Store(l)
}

func logger() *slog.Logger {
	if l := theLog.Load(); l != nil {
		return l
	}
	return slog.Default()
}
