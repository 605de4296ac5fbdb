// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

// Package models defines the shared data structures of Plenum: the
// fixed record types of the five input tables, the Report and
// RankingSnapshot output structures, and the API response envelope.
//
// The package has no behavior beyond trivial accessors; all
// computation lives in internal/engine.
package models
