/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"io"

	"github.com/DocCert/DocCert/common/interfaces"
)

// This package implements interfaces.Logger
var _ interfaces.Logger = (*Logger)(nil)

// Option is a function that configures a Logger
type Option func(*Logger) error

// New creates a new Logger with the provided options
func New(options ...Option) (*Logger, error) {
	u := &Logger{retainDays: 30}

	for _, option := range options {
		if err := option(u); err != nil {
			return nil, err
		}
	}

	return u.open()
}

// WithPrefix sets a process name or similar short identifier
func WithPrefix(prefix string) Option {
	return func(u *Logger) error {
		u.prefix = prefix
		return nil
	}
}

// WithLogFile sets the log file
func WithLogFile(logfile string) Option {
	return func(u *Logger) error {
		u.logfile = logfile
		return nil
	}
}

// WithConsole sends log lines to w in addition to the log file.
// A CLI passes os.Stderr so that log output never mixes with results.
func WithConsole(w io.Writer) Option {
	return func(u *Logger) error {
		u.console = w
		return nil
	}
}

// WithDebug enables or disables debug logging
func WithDebug(debug bool) Option {
	return func(u *Logger) error {
		u.debug = debug
		return nil
	}
}

// WithRetention sets the number of days to retain logs
func WithRetention(retainDays int) Option {
	return func(u *Logger) error {
		u.retainDays = retainDays
		return nil
	}
}
