package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level, case insensitively.
// Unrecognized values map to LevelWarn.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes leveled messages to a file, safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	once            sync.Once
)

// Init initializes the global logger with the given file. Subsequent calls
// are no-ops.
func Init(logPath string, minLevel Level) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(logPath, minLevel)
		if err != nil {
			return
		}
		defaultLoggerMu.Lock()
		defaultLogger = l
		defaultLoggerMu.Unlock()
	})
	return err
}

// New creates a logger appending to the given file, creating it (and its
// directory) with restrictive permissions if needed.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{file: file, minLevel: minLevel}, nil
}

// Close closes the logger's file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s: %s\n", timestamp, level.String(), message)

	if _, err := l.file.WriteString(line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

func global() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Package-level convenience functions writing to the global logger.
// They are no-ops when Init has not been called.

func Debug(format string, args ...any) { global().Debug(format, args...) }
func Info(format string, args ...any)  { global().Info(format, args...) }
func Warn(format string, args ...any)  { global().Warn(format, args...) }
func Error(format string, args ...any) { global().Error(format, args...) }

// Close closes the global logger.
func Close() error {
	return global().Close()
}
