// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package engine

import "errors"

// Sentinel errors returned by engine operations. Callers classify with
// errors.Is; the API layer maps each to an HTTP status and error code.
var (
	// ErrInvalidRange means the year bounds, ordering or minimum span
	// were violated. Surfaced before any computation starts.
	ErrInvalidRange = errors.New("invalid year range")

	// ErrCountryNotFound means the country has no rows anywhere in the
	// scores table.
	ErrCountryNotFound = errors.New("country not found")

	// ErrInsufficientData means the country (or year) exists in the
	// dataset but has no usable rows within the requested range.
	ErrInsufficientData = errors.New("insufficient data in range")

	// ErrPeerNotFound means an alignment computation found no peer
	// with overlapping similarity data. The report assembler absorbs
	// it by degrading the affected section; it is never fatal for a
	// whole report.
	ErrPeerNotFound = errors.New("no peer with overlapping data")
)
