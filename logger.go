package sdlimage

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	loggerMu   sync.RWMutex
)

// Logger returns the package logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		loggerMu.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		loggerMu.Unlock()
	})

	loggerMu.RLock()
	defer loggerMu.RUnlock()

	return logger
}

// SetLogger replaces the package logger. A nil logger restores the no-op one.
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})

	if l == nil {
		l = zap.NewNop()
	}

	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
