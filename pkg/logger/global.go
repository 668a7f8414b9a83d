package logger

import (
	"os"
	"sync"
)

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
	once         sync.Once
)

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	once.Do(func() {
		globalMu.Lock()
		defer globalMu.Unlock()
		if globalLogger != nil {
			return
		}

		level := "info"
		if os.Getenv("DEBUG") == "true" {
			level = "debug"
		} else if env := os.Getenv("LOG_LEVEL"); env != "" {
			level = env
		}

		globalLogger = New(Config{
			Level:  level,
			Format: "json",
			Output: "stdout",
		})
	})

	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the global logger. Loggers already derived with
// WithField keep writing to the previous instance.
func SetLogger(l *Logger) {
	once.Do(func() {})
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
	SetGlobalLogger(l)
}

func Debug(msg string) {
	GetLogger().Debug(msg)
}

func Info(msg string) {
	GetLogger().Info(msg)
}

func Warn(msg string) {
	GetLogger().Warn(msg)
}

func Error(msg string) {
	GetLogger().Error(msg)
}

// Fatal logs a fatal message and exits
func Fatal(msg string) {
	GetLogger().Fatal(msg)
}

func WithField(key string, value interface{}) *Logger {
	return GetLogger().WithField(key, value)
}

func WithFields(fields map[string]interface{}) *Logger {
	return GetLogger().WithFields(fields)
}

func WithError(err error) *Logger {
	return GetLogger().WithError(err)
}
