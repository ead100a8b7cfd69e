package runtime

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel orders message severities. Messages below the configured level
// are dropped.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelOff
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "OFF"}

func (l LogLevel) String() string {
	if l < LogLevelDebug || l > LogLevelOff {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel maps a level name (as found in AMPELL_LOG_LEVEL) to its
// LogLevel. Unknown names fall back to Info with an error.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LogLevelDebug, nil
	case "INFO":
		return LogLevelInfo, nil
	case "WARN", "WARNING":
		return LogLevelWarn, nil
	case "ERROR":
		return LogLevelError, nil
	case "OFF", "NONE":
		return LogLevelOff, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level: %s", s)
}

// Logger is the leveled logging seam. The interpreter only emits Debug
// (dispatch milestones) and Error (aborted runs), but embedding hosts get
// the full range.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	SetLevel(level LogLevel)
	GetLevel() LogLevel
}

// DefaultLogger writes leveled lines through a stdlib log.Logger. Level
// changes are safe against concurrent logging.
type DefaultLogger struct {
	level  LogLevel
	logger *log.Logger
	mu     sync.RWMutex
}

func NewLogger(output io.Writer, level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		level:  level,
		logger: log.New(output, "", log.LstdFlags),
	}
}

func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *DefaultLogger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *DefaultLogger) log(level LogLevel, format string, args ...any) {
	if level < l.GetLevel() {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debug(format string, args ...any) { l.log(LogLevelDebug, format, args...) }
func (l *DefaultLogger) Info(format string, args ...any)  { l.log(LogLevelInfo, format, args...) }
func (l *DefaultLogger) Warn(format string, args ...any)  { l.log(LogLevelWarn, format, args...) }
func (l *DefaultLogger) Error(format string, args ...any) { l.log(LogLevelError, format, args...) }

var globalLogger = NewLogger(os.Stderr, LogLevelInfo)

// SetLogLevel sets the level of the package-level logger.
func SetLogLevel(level LogLevel) {
	globalLogger.SetLevel(level)
}

// Debug logs a debug message through the package-level logger.
func Debug(format string, args ...any) {
	globalLogger.Debug(format, args...)
}

// Error logs an error message through the package-level logger.
func Error(format string, args ...any) {
	globalLogger.Error(format, args...)
}

func init() {
	if levelStr := os.Getenv("AMPELL_LOG_LEVEL"); levelStr != "" {
		if level, err := ParseLogLevel(levelStr); err == nil {
			SetLogLevel(level)
		}
	}
	// Keep test output quiet unless a level was asked for explicitly.
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLogLevel(LogLevelError)
	}
}
