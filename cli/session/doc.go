/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package session owns the authenticated API session of the client.
//
// A Manager decorates an http.RoundTripper with three stages:
//
//	Recover -> Attach -> Detect -> base transport
//
// Attach adds the stored access token as a bearer credential. Detect turns
// an HTTP 401 into an *AuthFailure. Recover handles that failure: it
// refreshes the access token at most once at a time across all goroutines,
// resubmits the failed request exactly once and, when the session cannot
// be recovered, clears every stored credential and notifies the
// subscribers registered with OnExpired.
//
// Transport errors such as timeouts never reach the refresh path.
package session
