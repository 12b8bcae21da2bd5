package logger

import (
	"sync"

	"go.uber.org/zap"
)

type Config struct {
	Debug bool
}

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Setup builds the process logger. Debug switches to the human-readable
// development encoder at debug level; otherwise JSON at info. The returned
// cleanup flushes and restores the no-op logger.
func Setup(cfg Config) (func() error, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.Debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", zap.Bool("debug", cfg.Debug))

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()
		err := global.Sync()
		global = zap.NewNop()
		return err
	}
	return cleanup, nil
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Set replaces the process logger, mainly for tests.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}
