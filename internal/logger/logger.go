// Package logger holds the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Log is the shared logger. It is a no-op until Init is called, so
// library code may log unconditionally.
var Log = zap.NewNop()

var once sync.Once

// Init replaces the no-op logger with a real one. Safe to call more
// than once; only the first call takes effect.
func Init() {
	once.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.DisableStacktrace = true

		log, err := config.Build()
		if err != nil {
			return
		}
		Log = log
	})
}
