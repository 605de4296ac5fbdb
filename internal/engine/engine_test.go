// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package engine

import (
	"errors"
	"testing"

	"github.com/plenumhq/plenum/internal/dataset"
	"github.com/plenumhq/plenum/internal/models"
)

// newTestEngine builds an engine over a synthetic dataset.
func newTestEngine(t *testing.T, tables dataset.Tables, topK int) *Engine {
	t.Helper()
	store, err := dataset.New(tables)
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return New(store, topK)
}

// score builds a score row with identical values and ranks across the
// pillars, enough for tests that do not care about per-pillar detail.
func score(country string, year int, value float64, rank int) models.CountryYearScore {
	return models.CountryYearScore{
		Country: country, Year: year,
		Pillar1: value, Pillar2: value, Pillar3: value, TotalIndex: value,
		Pillar1Rank: rank, Pillar2Rank: rank, Pillar3Rank: rank, TotalRank: rank,
	}
}

// sim builds a similarity row.
func sim(a, b string, year int, s float64) models.PairwiseSimilarity {
	return models.PairwiseSimilarity{CountryA: a, CountryB: b, Year: year, Score: s}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		end       int
		wantValid bool
	}{
		{"span of two succeeds", 2010, 2012, true},
		{"span of one fails", 2010, 2011, false},
		{"zero span fails", 2010, 2010, false},
		{"start after end fails", 2012, 2010, false},
		{"start before 1946 fails", 1945, 1950, false},
		{"end after 2024 fails", 2020, 2025, false},
		{"full range succeeds", 1946, 2024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.start, tt.end)
			if tt.wantValid && err != nil {
				t.Errorf("expected valid range, got: %v", err)
			}
			if !tt.wantValid {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("expected ErrInvalidRange, got: %v", err)
				}
			}
		})
	}
}

func TestValidateYear(t *testing.T) {
	if err := ValidateYear(1946); err != nil {
		t.Errorf("1946 should be valid: %v", err)
	}
	if err := ValidateYear(2024); err != nil {
		t.Errorf("2024 should be valid: %v", err)
	}
	if err := ValidateYear(1945); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for 1945, got: %v", err)
	}
	if err := ValidateYear(2025); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for 2025, got: %v", err)
	}
}

func TestNewClampsTopK(t *testing.T) {
	store, err := dataset.New(dataset.Tables{})
	if err != nil {
		t.Fatal(err)
	}
	if e := New(store, 0); e.topK != DefaultTopK {
		t.Errorf("expected topK fallback to %d, got %d", DefaultTopK, e.topK)
	}
	if e := New(store, 3); e.topK != 3 {
		t.Errorf("expected topK 3, got %d", e.topK)
	}
}
