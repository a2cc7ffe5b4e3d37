/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package display writes command results in the selected output format
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case JSON, "":
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", s)
	}
}

type Printer struct {
	out    io.Writer
	errOut io.Writer
	format Format
}

// New returns a Printer writing results to out and messages to errOut
func New(out, errOut io.Writer, format Format) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, errOut: errOut, format: format}
}

// Print writes v as an indented JSON document or as YAML
func (p *Printer) Print(v any) error {
	if p.format == YAML {
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error marshalling to YAML: %w", err)
		}
		return enc.Close()
	}

	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling to JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(jsonData))
	return err
}

// Message writes a human readable line that is not part of the result
func (p *Printer) Message(format string, args ...any) {
	_, _ = fmt.Fprintf(p.errOut, format+"\n", args...)
}

// Stderr receives the output of ErrorWrapper
var Stderr io.Writer = os.Stderr

// ErrorWrapper is a simple wrapper for CLI error handling.
// If there is an error, it prints it to the console.
func ErrorWrapper(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(Stderr, "Error: %s\n", err.Error())
	}
}
