package helpers

import (
	"fmt"
	"os"
	"sync"
	"time"

	"sjsage522/courseadvisor/logger"
)

// LoggerInterface defines the interface for logger implementations
type LoggerInterface interface {
	LogError(subject string, err error)
	LogInfo(format string, args ...interface{})
}

// Logger appends per-subject failures to an error file and mirrors
// every message to the structured logger
type Logger struct {
	errorFile string
	mu        sync.Mutex
}

// NewLogger creates a new logger instance; an empty errorFile disables the file
func NewLogger(errorFile string) *Logger {
	return &Logger{
		errorFile: errorFile,
	}
}

// LogError logs an error to a file with subject code and timestamp
func (l *Logger) LogError(subject string, err error) {
	logger.ForExtractor(subject).Error().Err(err).Msg("Subject failed")

	if l.errorFile == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, fileErr := os.OpenFile(l.errorFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if fileErr != nil {
		logger.Warn("failed to open error log %s: %v", l.errorFile, fileErr)
		return
	}
	defer f.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(f, "[%s] [%s] %s\n", timestamp, subject, err.Error())
}

// LogInfo logs an informational message
func (l *Logger) LogInfo(format string, args ...interface{}) {
	logger.Info(format, args...)
}
