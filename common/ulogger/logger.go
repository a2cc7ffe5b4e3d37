/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/DocCert/DocCert/common/interfaces"
)

// Logger writes event-numbered log lines to a daily rotated file and,
// optionally, to a console writer.
type Logger struct {
	mu             sync.Mutex
	fileHandle     *os.File
	logfile        string
	console        io.Writer
	debug          bool
	prefix         string
	retainDays     int
	currentLogDate string
}

// open prepares the log file. If no file is configured, or it cannot be
// opened, output falls back to stderr.
func (u *Logger) open() (*Logger, error) {
	var err error
	var fh *os.File

	if u.logfile == "" {
		if u.console == nil {
			u.console = os.Stderr
		}
		return u, nil
	}

	// Sanitize the file path
	u.logfile = filepath.Clean(u.logfile)

	// Create the directory if it doesn't exist
	dir := filepath.Dir(u.logfile)
	if err = os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Use the modification date of an existing log file so that
	// rotation happens on the first write of a new day
	if fileInfo, statErr := os.Stat(u.logfile); statErr == nil {
		u.currentLogDate = fileInfo.ModTime().Format("20060102")
	} else {
		u.currentLogDate = time.Now().Format("20060102")
	}

	fh, err = os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		u.fileHandle = nil
		if u.console == nil {
			u.console = os.Stderr
		}
		return u, nil
	}
	u.fileHandle = fh
	return u, nil
}

// Close closes the logger.
func (u *Logger) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.fileHandle != nil {
		_ = u.fileHandle.Sync()
		_ = u.fileHandle.Close()
		u.fileHandle = nil
	}
}

// formatMessage formats the log message with a timestamp.
func (u *Logger) formatMessage(eid uint32, level string, message string, fields interfaces.Fields) string {
	msg := fmt.Sprintf("%s %s [%s] %04d %s",
		time.Now().Format("2006-01-02 15:04:05"),
		u.prefix, level, eid, message)

	if fields != nil {
		if text := fields.ToText(); text != "" {
			msg += ": " + text
		}
	}

	return msg
}

// writeLog writes a log message and handles rotation if necessary.
func (u *Logger) writeLog(eid uint32, level string, message string, fields interfaces.Fields) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.rotateLogs(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "log rotation error: %s\n", err.Error())
	}

	tmp := u.formatMessage(eid, level, message, fields) + "\n"

	if u.fileHandle != nil {
		_, _ = u.fileHandle.WriteString(tmp)
	}

	if u.console != nil {
		_, _ = io.WriteString(u.console, tmp)
	}
}

// Debug logs a debug message if debug logging is enabled.
func (u *Logger) Debug(eid uint32, message string, fields interfaces.Fields) {
	if u.debug {
		u.writeLog(eid, "DEBUG", message, fields)
	}
}

// Info logs an informational message.
func (u *Logger) Info(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "INFO", message, fields)
}

// Warning logs a warning message.
func (u *Logger) Warning(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "WARNING", message, fields)
}

// Error logs an error message.
func (u *Logger) Error(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, "ERROR", message, fields)
}

// Debugf logs a formatted debug message.
func (u *Logger) Debugf(eid uint32, format string, v ...any) {
	if u.debug {
		u.writeLog(eid, "DEBUG", fmt.Sprintf(format, v...), nil)
	}
}

// Infof logs a formatted informational message.
func (u *Logger) Infof(eid uint32, format string, v ...any) {
	u.writeLog(eid, "INFO", fmt.Sprintf(format, v...), nil)
}

// Warningf logs a formatted warning message.
func (u *Logger) Warningf(eid uint32, format string, v ...any) {
	u.writeLog(eid, "WARNING", fmt.Sprintf(format, v...), nil)
}

// Errorf logs a formatted error message.
func (u *Logger) Errorf(eid uint32, format string, v ...any) {
	u.writeLog(eid, "ERROR", fmt.Sprintf(format, v...), nil)
}
