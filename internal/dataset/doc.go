// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

// Package dataset loads the five pre-aggregated input tables into an
// immutable in-memory Store.
//
// The tables arrive as CSV files produced by the upstream pipeline:
// annual country scores, pairwise voting similarity, topic-level vote
// tallies, a country-to-region mapping and static classification
// flags. Load reads them through an in-memory DuckDB instance; New
// validates every row and indexes them for O(1) lookups.
//
// The Store is built once at startup and never mutated, so it is safe
// for concurrent use without locking. All analytical computation lives
// in internal/engine; this package only answers point lookups.
package dataset
