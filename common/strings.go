/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

import "strings"

// SingleLine collapses a server supplied message onto one line so that it
// can be printed and logged safely. Runs of whitespace, including line
// breaks, become single spaces and the result is cut to limit runes when
// limit is positive.
func SingleLine(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit > 0 {
		if r := []rune(s); len(r) > limit {
			return string(r[:limit]) + "..."
		}
	}
	return s
}
