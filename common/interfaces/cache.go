/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

import "time"

// Cache stores byte slices keyed by string for a limited time
type Cache interface {
	TTL(time.Duration)  // Time to live for new and existing entries
	Clear()             // Remove every entry
	Set(string, []byte) // Store an entry
	Get(string) []byte  // Return an entry, nil if absent or expired
}
