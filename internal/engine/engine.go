// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

// Package engine computes country reports and yearly rankings over the
// immutable dataset store.
//
// Every operation is a pure function of the store contents: no
// mutation, no I/O, no clocks. Identical requests against the same
// store produce byte-identical results, which the API layer relies on
// for ETag generation.
package engine

import (
	"fmt"

	"github.com/plenumhq/plenum/internal/dataset"
)

// Year bounds of the General Assembly voting record covered by the
// upstream pipeline.
const (
	MinYear = 1946
	MaxYear = 2024
)

// MinSpan is the minimum end_year - start_year distance for report
// requests. Shorter periods produce averages too noisy to be useful.
const MinSpan = 2

// DefaultTopK is the default list length for allies/enemies and topic
// extremes.
const DefaultTopK = 5

// Engine computes reports and rankings. It holds only the store
// reference and the top-k setting, so a single instance serves all
// requests concurrently.
type Engine struct {
	store *dataset.Store
	topK  int
}

// New creates an Engine over the given store. topK bounds the
// allies/enemies and topic-extreme list lengths; values below 1 fall
// back to DefaultTopK.
func New(store *dataset.Store, topK int) *Engine {
	if topK < 1 {
		topK = DefaultTopK
	}
	return &Engine{store: store, topK: topK}
}

// ValidateRange checks the year-range preconditions shared by all
// period operations: bounds, ordering and minimum span.
func ValidateRange(startYear, endYear int) error {
	if startYear < MinYear || endYear > MaxYear {
		return fmt.Errorf("%w: years must be within %d-%d, got %d-%d",
			ErrInvalidRange, MinYear, MaxYear, startYear, endYear)
	}
	if startYear > endYear {
		return fmt.Errorf("%w: start_year %d after end_year %d",
			ErrInvalidRange, startYear, endYear)
	}
	if endYear-startYear < MinSpan {
		return fmt.Errorf("%w: span must be at least %d years, got %d",
			ErrInvalidRange, MinSpan, endYear-startYear)
	}
	return nil
}

// ValidateYear checks the single-year precondition of the rankings
// operation.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year must be within %d-%d, got %d",
			ErrInvalidRange, MinYear, MaxYear, year)
	}
	return nil
}
