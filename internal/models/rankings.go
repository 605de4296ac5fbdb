// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package models

// RankingSnapshot holds the per-pillar rankings for one year plus the
// derived "average" ranking. Like Report it is a pure value with no
// request-scoped state.
//
// Message communicates partial-data situations (e.g. no year-1 rows
// for delta computation) without failing the request. It is empty
// when every entry has complete deltas.
type RankingSnapshot struct {
	Year    int            `json:"year"`
	Pillar1 []RankingEntry `json:"pillar_1"`
	Pillar2 []RankingEntry `json:"pillar_2"`
	Pillar3 []RankingEntry `json:"pillar_3"`
	Average []RankingEntry `json:"average"`
	Message string         `json:"message,omitempty"`
}

// RankingEntry is one country's position in one ranking list.
//
// RankChange is previous rank minus current rank, so positive means
// the country improved. Delta fields are nil (absent), never zero,
// when the comparison year has no row for the country.
type RankingEntry struct {
	Country        string              `json:"country_iso3"`
	Value          float64             `json:"value"`
	Rank           int                 `json:"rank"`
	RankChange     *int                `json:"rank_change,omitempty"`
	ValueChange    *float64            `json:"value_change,omitempty"`
	RankChange10Y  *int                `json:"rank_change_10y,omitempty"`
	ValueChange10Y *float64            `json:"value_change_10y,omitempty"`
	Flags          ClassificationFlags `json:"classification"`
}
