package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ducminhle1904/crypto-signal-bot/internal/indicators"
	"github.com/ducminhle1904/crypto-signal-bot/internal/signal"
)

// Logger represents a file logger for one monitoring session.
type Logger struct {
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
	logDir  string
	path    string
}

// LogLevel represents different types of log entries.
type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARN"
	LogLevelError   LogLevel = "ERROR"
	LogLevelSignal  LogLevel = "SIGNAL"
	LogLevelStatus  LogLevel = "STATUS"
)

// NewLogger creates a new session file logger under logDir.
func NewLogger(logDir string) (*Logger, error) {
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("signal-bot_%s.log", time.Now().Format("2006-01-02"))
	logPath := filepath.Join(logDir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := &Logger{
		logFile: file,
		logger:  log.New(file, "", 0),
		logDir:  logDir,
		path:    logPath,
	}
	l.writeSessionHeader()
	return l, nil
}

func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🚀 SIGNAL MONITORING SESSION STARTED
================================================================================
Started: %s
Log File: %s
================================================================================
`, time.Now().Format("2006-01-02 15:04:05"), l.path)

	l.logger.Print(header)
}

// Log writes a formatted log entry with the specified level.
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s", timestamp, level, message)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message.
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// LogError logs an error with context.
func (l *Logger) LogError(context string, err error) {
	l.Error("%s: %v", context, err)
}

// LogEvaluation logs one completed evaluation in the session log, in the
// same single-line shape the console output uses.
func (l *Logger) LogEvaluation(res signal.Result) {
	level := LogLevelStatus
	if res.Signal != signal.NoSignal {
		level = LogLevelSignal
	}
	l.Log(level, "Pair: %s | Price: %s | RSI(14): %s | MACD: L:%s S:%s | EMAs: E50:%s E200:%s | Signal: %s",
		res.Pair,
		formatValue(res.Price, 8),
		formatValue(res.Snapshot.RSI, 2),
		formatValue(res.Snapshot.MACDLine, 5),
		formatValue(res.Snapshot.MACDSignal, 5),
		formatValue(res.Snapshot.EMAFast, 8),
		formatValue(res.Snapshot.EMASlow, 8),
		res.Signal,
	)
}

func formatValue(v indicators.Value, precision int) string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", precision, v.Float)
}

// GetLogPath returns the current log file path.
func (l *Logger) GetLogPath() string {
	return l.path
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		footer := fmt.Sprintf(`
================================================================================
🛑 SIGNAL MONITORING SESSION ENDED
================================================================================
Ended: %s
================================================================================

`, time.Now().Format("2006-01-02 15:04:05"))
		l.logger.Print(footer)
		return l.logFile.Close()
	}
	return nil
}
