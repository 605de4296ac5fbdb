// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package models

// This file defines the fixed record types for the five input tables.
// Shapes are validated once at load time; the engine never sees a
// malformed row (see internal/dataset).

// CountryYearScore is one row of the annual pillar-score table.
// (Country, Year) is unique; ranks are 1-based and dense within each
// year's population, pre-computed by the upstream pipeline.
type CountryYearScore struct {
	Country     string  `json:"country_iso3"`
	Year        int     `json:"year"`
	Pillar1     float64 `json:"pillar_1"`
	Pillar2     float64 `json:"pillar_2"`
	Pillar3     float64 `json:"pillar_3"`
	TotalIndex  float64 `json:"total_index"`
	Pillar1Rank int     `json:"pillar_1_rank"`
	Pillar2Rank int     `json:"pillar_2_rank"`
	Pillar3Rank int     `json:"pillar_3_rank"`
	TotalRank   int     `json:"total_rank"`
}

// PairwiseSimilarity is one row of the pairwise voting-similarity table.
// The relation is symmetric: similarity(a,b,year) == similarity(b,a,year).
// The store normalizes the pair so lookups are order-independent.
type PairwiseSimilarity struct {
	CountryA string  `json:"country_a"`
	CountryB string  `json:"country_b"`
	Year     int     `json:"year"`
	Score    float64 `json:"similarity_score"`
}

// TopicVote is one row of the topic-level voting table: how a country
// voted on resolutions of one topic in one year.
type TopicVote struct {
	Country      string `json:"country_iso3"`
	Year         int    `json:"year"`
	Topic        string `json:"topic"`
	YesCount     int    `json:"yes_count"`
	NoCount      int    `json:"no_count"`
	AbstainCount int    `json:"abstain_count"`
}

// TotalVotes returns the total vote volume behind this row.
func (tv TopicVote) TotalVotes() int {
	return tv.YesCount + tv.NoCount + tv.AbstainCount
}

// RegionMapping maps a country to its geographic region. Static.
type RegionMapping struct {
	Country string `json:"country_iso3"`
	Region  string `json:"region"`
}

// ClassificationFlags holds the static per-country boolean attributes.
// The snapshot year is implicit in the source table; flags are treated
// as year-independent. A country absent from the table gets the zero
// value (all false) rather than an error.
type ClassificationFlags struct {
	IsOECD               bool `json:"is_oecd"`
	IsG20                bool `json:"is_g20"`
	IsTop50GDP           bool `json:"is_top_50_gdp"`
	IsBottom50GDP        bool `json:"is_bottom_50_gdp"`
	IsTop50Population    bool `json:"is_top_50_population"`
	IsBottom50Population bool `json:"is_bottom_50_population"`
}
