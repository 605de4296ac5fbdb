// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/plenumhq/plenum/internal/dataset"
	"github.com/plenumhq/plenum/internal/models"
)

func TestRankingsForYearInvalidYear(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{}, 5)

	if _, err := e.RankingsForYear(1945); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got: %v", err)
	}
	if _, err := e.RankingsForYear(2025); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got: %v", err)
	}
}

func TestRankingsForYearEmptyYear(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{score("FRA", 2010, 0.5, 1)},
	}, 5)

	if _, err := e.RankingsForYear(2015); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got: %v", err)
	}
}

func TestRankingsTrustUpstreamRanks(t *testing.T) {
	// Pillar lists are ordered by the pre-computed rank columns, not
	// re-derived from values.
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			// BBB has the higher value but the upstream rank says 2.
			{Country: "BBB", Year: 2015, Pillar1: 0.9, Pillar1Rank: 2, Pillar2Rank: 2, Pillar3Rank: 2, TotalRank: 2},
			{Country: "AAA", Year: 2015, Pillar1: 0.8, Pillar1Rank: 1, Pillar2Rank: 1, Pillar3Rank: 1, TotalRank: 1},
		},
	}, 5)

	snap, err := e.RankingsForYear(2015)
	if err != nil {
		t.Fatalf("RankingsForYear failed: %v", err)
	}
	if snap.Pillar1[0].Country != "AAA" || snap.Pillar1[0].Rank != 1 {
		t.Errorf("expected AAA first by upstream rank, got %+v", snap.Pillar1[0])
	}
	if snap.Pillar1[1].Country != "BBB" || snap.Pillar1[1].Value != 0.9 {
		t.Errorf("unexpected second entry: %+v", snap.Pillar1[1])
	}
}

func TestRankingsMissingPrevYearDeltasAbsent(t *testing.T) {
	// XYZ exists in 2015 but not 2014: its deltas must be absent (nil,
	// not zero) and the snapshot must carry a message instead of
	// failing.
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			score("FRA", 2015, 0.8, 1),
			score("XYZ", 2015, 0.6, 2),
			score("FRA", 2014, 0.7, 1),
			score("XYZ", 2005, 0.5, 1), // only the 10y comparison exists
		},
	}, 5)

	snap, err := e.RankingsForYear(2015)
	if err != nil {
		t.Fatalf("RankingsForYear failed: %v", err)
	}

	var fra, xyz models.RankingEntry
	for _, entry := range snap.Pillar1 {
		switch entry.Country {
		case "FRA":
			fra = entry
		case "XYZ":
			xyz = entry
		}
	}

	if xyz.RankChange != nil || xyz.ValueChange != nil {
		t.Errorf("expected absent 1y deltas for XYZ, got %+v", xyz)
	}
	if xyz.RankChange10Y == nil {
		t.Error("expected 10y delta for XYZ against 2005")
	}
	if fra.RankChange == nil || *fra.RankChange != 0 {
		t.Errorf("expected FRA rank change 0, got %v", fra.RankChange)
	}
	if fra.ValueChange == nil || math.Abs(*fra.ValueChange-0.1) > 1e-12 {
		t.Errorf("expected FRA value change 0.1, got %v", fra.ValueChange)
	}
	if snap.Message == "" {
		t.Error("expected partial-data message")
	}
	if !strings.Contains(snap.Message, "2014") {
		t.Errorf("expected message to name the missing year, got %q", snap.Message)
	}
}

func TestRankingsCompleteDataNoMessage(t *testing.T) {
	tables := dataset.Tables{}
	for _, year := range []int{2005, 2014, 2015} {
		tables.Scores = append(tables.Scores,
			score("AAA", year, 0.8, 1),
			score("BBB", year, 0.6, 2),
		)
	}
	e := newTestEngine(t, tables, 5)

	snap, err := e.RankingsForYear(2015)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Message != "" {
		t.Errorf("expected no message with full coverage, got %q", snap.Message)
	}
}

func TestRankingsRankChangeSign(t *testing.T) {
	// AAA improves from rank 3 to rank 1: change = 3 - 1 = +2.
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			score("AAA", 2014, 0.3, 3),
			score("BBB", 2014, 0.5, 1),
			score("AAA", 2015, 0.9, 1),
			score("BBB", 2015, 0.5, 2),
		},
	}, 5)

	snap, err := e.RankingsForYear(2015)
	if err != nil {
		t.Fatal(err)
	}
	aaa := snap.Pillar1[0]
	if aaa.Country != "AAA" {
		t.Fatalf("expected AAA ranked first, got %s", aaa.Country)
	}
	if aaa.RankChange == nil || *aaa.RankChange != 2 {
		t.Errorf("expected rank change +2, got %v", aaa.RankChange)
	}
}

func TestAverageRankingDerived(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			{Country: "AAA", Year: 2015, Pillar1: 0.9, Pillar2: 0.3, Pillar3: 0.3, Pillar1Rank: 1, Pillar2Rank: 2, Pillar3Rank: 2},
			{Country: "BBB", Year: 2015, Pillar1: 0.6, Pillar2: 0.6, Pillar3: 0.6, Pillar1Rank: 2, Pillar2Rank: 1, Pillar3Rank: 1},
		},
	}, 5)

	snap, err := e.RankingsForYear(2015)
	if err != nil {
		t.Fatal(err)
	}
	// Means: AAA = 0.5, BBB = 0.6 — BBB first despite its pillar_1 rank.
	if snap.Average[0].Country != "BBB" || snap.Average[0].Rank != 1 {
		t.Errorf("expected BBB first in average ranking, got %+v", snap.Average[0])
	}
	if math.Abs(snap.Average[0].Value-0.6) > 1e-12 {
		t.Errorf("expected mean 0.6, got %v", snap.Average[0].Value)
	}
	if snap.Average[1].Country != "AAA" || snap.Average[1].Rank != 2 {
		t.Errorf("expected AAA second, got %+v", snap.Average[1])
	}
}

func TestAverageRankingTieBreakLexical(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			score("ZZZ", 2015, 0.5, 1),
			score("AAA", 2015, 0.5, 2),
		},
	}, 5)

	snap, err := e.RankingsForYear(2015)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Average[0].Country != "AAA" {
		t.Errorf("expected lexical tie-break AAA first, got %s", snap.Average[0].Country)
	}
}

func TestRankingsFlagsPassthrough(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			score("FRA", 2015, 0.8, 1),
			score("XXX", 2015, 0.2, 2),
		},
		Flags: []dataset.FlagRow{
			{Country: "FRA", Flags: models.ClassificationFlags{IsOECD: true, IsG20: true}},
		},
	}, 5)

	snap, err := e.RankingsForYear(2015)
	if err != nil {
		t.Fatal(err)
	}
	if !snap.Pillar1[0].Flags.IsOECD {
		t.Error("expected FRA flags passed through")
	}
	// XXX has no flags row: all false, not an error.
	if snap.Pillar1[1].Flags != (models.ClassificationFlags{}) {
		t.Errorf("expected zero flags for XXX, got %+v", snap.Pillar1[1].Flags)
	}
}
