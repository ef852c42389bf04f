// Package obslog provides the structured, leveled diagnostic logger used by
// the composition layer and the security middleware. It is deliberately separate
// from package audit: obslog is for operators, audit is a security record.
package obslog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.RWMutex
	logger = logrus.New()
)

// Logger returns the process-wide structured logger. Callers that need
// isolated configuration (tests, multi-tenant embedding) should use
// logger.WithField-style scoping rather than replacing the global.
func Logger() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLevel adjusts the global logger's verbosity.
func SetLevel(level logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(level)
}

// Fields is a shorthand alias matching the pack's structured-logging idiom.
type Fields = logrus.Fields
