/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var ErrNoInput = errors.New("no input available")

// Prompter asks the user for values on the terminal. Passwords are read
// without echo when the input is a terminal and as a plain line otherwise.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

// NewPrompter reads from stdin and writes prompts to stderr
func NewPrompter() *Prompter {
	return NewPrompterWith(os.Stdin, os.Stderr, int(os.Stdin.Fd()))
}

// NewPrompterWith reads from in. fd is the descriptor used to detect a
// terminal; pass -1 for non-terminal input.
func NewPrompterWith(in io.Reader, out io.Writer, fd int) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), out: out, fd: fd}
}

// Required keeps prompting until a non-empty value is provided
func (p *Prompter) Required(label string) (string, error) {
	for {
		value, err := p.Optional(label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		_, _ = fmt.Fprintf(p.out, "%s cannot be empty. Please try again.\n", label)
	}
}

// Optional prompts once and may return an empty string
func (p *Prompter) Optional(label string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", label)
	return p.line(label)
}

// Password keeps prompting until a non-empty password is provided
func (p *Prompter) Password(label string) (string, error) {
	for {
		_, _ = fmt.Fprintf(p.out, "%s: ", label)

		var password string
		if p.fd >= 0 && term.IsTerminal(p.fd) {
			passwordBytes, err := term.ReadPassword(p.fd)
			_, _ = fmt.Fprintln(p.out) // Print newline after password input
			if err != nil {
				return "", fmt.Errorf("error reading %s: %w", strings.ToLower(label), err)
			}
			password = string(passwordBytes)
		} else {
			var err error
			if password, err = p.line(label); err != nil {
				return "", err
			}
		}

		if password != "" {
			return password, nil
		}
		_, _ = fmt.Fprintf(p.out, "%s cannot be empty. Please try again.\n", label)
	}
}

func (p *Prompter) line(label string) (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w for %s", ErrNoInput, strings.ToLower(label))
		}
		return "", fmt.Errorf("error reading %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(input), nil
}
