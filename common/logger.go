// common/logger.go

// Package common implements shared functionality used across the TadsPlayer application.
// This file contains logging functionality.

package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// earlyLogBuffer stores log messages before logger is initialized
var earlyLogBuffer []string
var earlyLogMutex sync.Mutex

// CaptureEarlyLog captures a log message before the logger is initialized
func CaptureEarlyLog(level Severity, format string, args ...interface{}) {
	earlyLogMutex.Lock()
	defer earlyLogMutex.Unlock()

	earlyLogBuffer = append(earlyLogBuffer, formatLogLine(time.Now(), level, format, args...))
}

// FlushEarlyLogs writes all captured early logs to the logger, keeping their original timestamps
func FlushEarlyLogs(logger *Logger) {
	earlyLogMutex.Lock()
	defer earlyLogMutex.Unlock()

	if logger == nil || len(earlyLogBuffer) == 0 {
		return
	}

	logger.Info("--- Flushing %d early log messages ---", len(earlyLogBuffer))
	for _, line := range earlyLogBuffer {
		logger.writeLine(line)
	}
	earlyLogBuffer = nil
	logger.Info("--- End of early logs ---")
}

// formatLogLine renders one log line: "2006-01-02 15:04:05 [LEVEL] message\n".
func formatLogLine(ts time.Time, level Severity, format string, args ...interface{}) string {
	message := fmt.Sprintf(format, args...)
	return fmt.Sprintf("%s [%s] %s\n", ts.Format("2006-01-02 15:04:05"), level, strings.TrimRight(message, "\n"))
}

// Logger writes leveled messages to a size- and age-rotated log file.
type Logger struct {
	logPath     string
	logFile     *os.File
	mutex       sync.Mutex
	maxSizeMB   int
	maxAgeDays  int
	currentSize int64
}

// NewLogger creates a new logger instance
func NewLogger(logPath string, maxSizeMB int, maxAgeDays int) (*Logger, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxAgeDays <= 0 {
		maxAgeDays = 7
	}
	logger := &Logger{
		logPath:    logPath,
		maxSizeMB:  maxSizeMB,
		maxAgeDays: maxAgeDays,
	}

	rootLogPath := filepath.Join(".", filepath.Base(logPath))

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		logger.logPath = rootLogPath
		CaptureEarlyLog(SeverityWarning, "Failed to create log directory at '%s': %v", filepath.Dir(logPath), err)
		CaptureEarlyLog(SeverityWarning, "Attempting fallback to root directory: %s", rootLogPath)
	}

	// Rotation on startup is best effort
	if err := logger.checkRotation(); err != nil {
		CaptureEarlyLog(SeverityWarning, "Failed to check log rotation: %v", err)
	}
	if logger.logFile != nil {
		logger.logFile.Close()
		logger.logFile = nil
	}

	file, err := os.OpenFile(logger.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		if logger.logPath == rootLogPath {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		CaptureEarlyLog(SeverityWarning, "Failed to open log file at '%s': %v", logger.logPath, err)
		CaptureEarlyLog(SeverityWarning, "Attempting fallback to root directory: %s", rootLogPath)
		logger.logPath = rootLogPath

		file, err = os.OpenFile(rootLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file at primary and fallback locations: %w", err)
		}
	}

	logger.logFile = file
	if info, err := file.Stat(); err == nil {
		logger.currentSize = info.Size()
	}

	return logger, nil
}

// Path returns the file the logger currently writes to
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.logPath
}

// Log writes a message to the log file. A nil logger writes nothing.
func (l *Logger) Log(level Severity, format string, args ...interface{}) error {
	if l == nil {
		return fmt.Errorf("logger is not initialized")
	}
	return l.writeLine(formatLogLine(time.Now(), level, format, args...))
}

func (l *Logger) writeLine(line string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.logFile == nil {
		return fmt.Errorf("log file is closed")
	}

	if l.currentSize >= int64(l.maxSizeMB)*1024*1024 {
		if err := l.rotate(); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	n, err := l.logFile.WriteString(line)
	if err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}
	l.currentSize += int64(n)
	return nil
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(SeverityInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(SeverityWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(SeverityError, format, args...)
}

// Close closes the log file
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	return err
}

// checkRotation rotates an existing log file that is too old or too large
func (l *Logger) checkRotation() error {
	info, err := os.Stat(l.logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	if time.Since(info.ModTime()) >= time.Duration(l.maxAgeDays)*24*time.Hour ||
		info.Size() >= int64(l.maxSizeMB)*1024*1024 {
		return l.rotate()
	}
	return nil
}

// rotate renames the current log file with a timestamp and starts a fresh one
func (l *Logger) rotate() error {
	if l.logFile != nil {
		l.logFile.Close()
	}

	dir := filepath.Dir(l.logPath)
	base := filepath.Base(l.logPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	rotatedPath := filepath.Join(dir, fmt.Sprintf("%s_%s%s", name, time.Now().Format("2006-01-02@15_04_05"), ext))

	if err := os.Rename(l.logPath, rotatedPath); err != nil {
		return fmt.Errorf("failed to rename log file: %w", err)
	}

	file, err := os.OpenFile(l.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create new log file: %w", err)
	}
	l.logFile = file
	l.currentSize = 0

	l.cleanOldLogs()
	return nil
}

// cleanOldLogs removes rotated log files older than 1 year
func (l *Logger) cleanOldLogs() {
	dir := filepath.Dir(l.logPath)
	base := filepath.Base(l.logPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	files, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("%s_*%s", name, ext)))
	if err != nil {
		return
	}

	oneYearAgo := time.Now().AddDate(-1, 0, 0)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().Before(oneYearAgo) {
			os.Remove(file)
		}
	}
}

// LocateLogger opens the application log. It prefers an existing log in the working
// directory, then the user config directory, and falls back to the working directory.
func LocateLogger(userConfigDir string, maxSizeMB, maxAgeDays int) (*Logger, error) {
	rootLogPath := FileNameLog
	if FileExists(rootLogPath) {
		if logger, err := NewLogger(rootLogPath, maxSizeMB, maxAgeDays); err == nil {
			return logger, nil
		}
	}

	if userConfigDir != "" {
		logDir := JoinPaths(userConfigDir, AppName, FolderNameLog)
		if err := EnsureDirectoryExists(logDir); err == nil {
			if logger, err := NewLogger(JoinPaths(logDir, FileNameLog), maxSizeMB, maxAgeDays); err == nil {
				return logger, nil
			}
		} else {
			CaptureEarlyLog(SeverityWarning, "Failed to create log directory: %v", err)
		}
	}

	return NewLogger(rootLogPath, maxSizeMB, maxAgeDays)
}
