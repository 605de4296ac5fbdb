// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package models

// Report is the full single-country analytics report assembled per
// request. It is a pure derived value: two identical requests against
// the same dataset snapshot produce byte-identical reports, so the
// structure carries no timestamps or other request-scoped state (the
// response envelope does).
//
// Sections backed by sparse data (P5 alignment, regional context,
// allies/enemies, topics) are pointers: nil means "unavailable", with
// an explanatory entry appended to Notes. Structural failures
// (unknown country, invalid range, no usable years) never produce a
// partial report; they fail the whole request instead.
type Report struct {
	Meta           ReportMeta         `json:"meta"`
	PeriodAverages PillarAverages     `json:"period_averages"`
	WorldAverages  PillarAverages     `json:"world_averages"`
	IndexAnalysis  IndexAnalysis      `json:"index_analysis"`
	VotingBehavior []TopicStanding    `json:"voting_behavior,omitempty"`
	TopicExtremes  *TopicExtremes     `json:"topic_extremes,omitempty"`
	P5             *P5Alignment       `json:"p5_alignment,omitempty"`
	Regional       *RegionalAlignment `json:"regional_context,omitempty"`
	AlliesEnemies  *AlliesEnemies     `json:"allies_enemies,omitempty"`
	TimeSeries     []CountryYearScore `json:"time_series"`
	Notes          []string           `json:"notes,omitempty"`
}

// ReportMeta identifies what the report describes.
type ReportMeta struct {
	Country   string `json:"country_iso3"`
	Region    string `json:"region,omitempty"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
	// YearsWithData counts the years in range the country reported.
	YearsWithData int `json:"years_with_data"`
}

// PillarAverages holds arithmetic means of the pillar scores over a
// period. Years counts how many years contributed to the mean.
type PillarAverages struct {
	Pillar1 float64 `json:"pillar_1_avg"`
	Pillar2 float64 `json:"pillar_2_avg"`
	Pillar3 float64 `json:"pillar_3_avg"`
	Total   float64 `json:"total_avg"`
	Years   int     `json:"years"`
}

// IndexAnalysis compares the country's position at the start and end
// of the period. Snapshots are taken at the first and last years in
// range where the country has a row; deltas are nil when only one
// such year exists.
type IndexAnalysis struct {
	StartSnapshot *CountryYearScore `json:"start_snapshot,omitempty"`
	EndSnapshot   *CountryYearScore `json:"end_snapshot,omitempty"`
	RankChange    *int              `json:"rank_change,omitempty"`
	ValueChange   *float64          `json:"value_change,omitempty"`
}

// PeerScore is one candidate peer with its average pairwise
// similarity over the period and the number of overlapping years the
// average is based on.
type PeerScore struct {
	Country string  `json:"country_iso3"`
	Score   float64 `json:"avg_similarity"`
	Years   int     `json:"overlapping_years"`
}

// P5Alignment names the most and least aligned permanent Security
// Council members for the period.
type P5Alignment struct {
	Most  PeerScore `json:"most_aligned"`
	Least PeerScore `json:"least_aligned"`
}

// RegionalAlignment lists the country's regional peers ordered by
// average similarity descending, with the mean across all peers.
type RegionalAlignment struct {
	Region       string      `json:"region"`
	Peers        []PeerScore `json:"peers"`
	AverageScore float64     `json:"average_score"`
}

// AlliesEnemies holds the top-k most and least similar countries
// worldwide over the period.
type AlliesEnemies struct {
	Allies  []PeerScore `json:"allies"`
	Enemies []PeerScore `json:"enemies"`
}

// TopicStanding is one topic's aggregate voting position over the
// period. Support rates are nil when the underlying vote volume is
// zero; such topics still appear in the full breakdown but are
// excluded from extreme rankings.
type TopicStanding struct {
	Topic              string   `json:"topic"`
	YesCount           int      `json:"yes_count"`
	NoCount            int      `json:"no_count"`
	AbstainCount       int      `json:"abstain_count"`
	CountrySupportRate *float64 `json:"country_support_rate,omitempty"`
	WorldSupportRate   *float64 `json:"world_support_rate,omitempty"`
}

// TopicExtremes holds the top-k most supported and most opposed
// topics for the period.
type TopicExtremes struct {
	TopSupported []TopicStanding `json:"top_supported"`
	TopOpposed   []TopicStanding `json:"top_opposed"`
}
