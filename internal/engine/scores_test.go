// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/plenumhq/plenum/internal/dataset"
	"github.com/plenumhq/plenum/internal/models"
)

func TestPeriodAverageConstantScores(t *testing.T) {
	// A country with identical scores across the whole range must get
	// that constant back exactly, not approximately.
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			score("USA", 2010, 0.6, 1),
			score("USA", 2011, 0.6, 1),
			score("USA", 2012, 0.6, 1),
			score("USA", 2013, 0.6, 1),
		},
	}, 5)

	avg, err := e.PeriodAverage("USA", 2010, 2013)
	if err != nil {
		t.Fatalf("PeriodAverage failed: %v", err)
	}
	if avg.Pillar1 != 0.6 || avg.Pillar2 != 0.6 || avg.Pillar3 != 0.6 || avg.Total != 0.6 {
		t.Errorf("expected exact 0.6 averages, got %+v", avg)
	}
	if avg.Years != 4 {
		t.Errorf("expected 4 contributing years, got %d", avg.Years)
	}
}

func TestPeriodAverageSkipsMissingYears(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			score("FRA", 2010, 0.2, 1),
			// 2011 missing
			score("FRA", 2012, 0.4, 1),
		},
	}, 5)

	avg, err := e.PeriodAverage("FRA", 2010, 2012)
	if err != nil {
		t.Fatalf("PeriodAverage failed: %v", err)
	}
	if got := avg.Total; math.Abs(got-0.3) > 1e-12 {
		t.Errorf("expected mean over present years 0.3, got %v", got)
	}
	if avg.Years != 2 {
		t.Errorf("expected 2 contributing years, got %d", avg.Years)
	}
}

func TestPeriodAverageLocality(t *testing.T) {
	// Rows outside the requested range must never influence the result.
	base := []models.CountryYearScore{
		score("FRA", 2010, 0.2, 1),
		score("FRA", 2011, 0.4, 1),
		score("FRA", 2012, 0.6, 1),
	}
	withOutside := append([]models.CountryYearScore{
		score("FRA", 2009, 99.0, 1),
		score("FRA", 2013, -99.0, 1),
	}, base...)

	e1 := newTestEngine(t, dataset.Tables{Scores: base}, 5)
	e2 := newTestEngine(t, dataset.Tables{Scores: withOutside}, 5)

	a1, err := e1.PeriodAverage("FRA", 2010, 2012)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := e2.PeriodAverage("FRA", 2010, 2012)
	if err != nil {
		t.Fatal(err)
	}
	if a1 != a2 {
		t.Errorf("rows outside range changed the result: %+v vs %+v", a1, a2)
	}
}

func TestPeriodAverageInsufficientData(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{score("BRA", 2000, 0.5, 1)},
	}, 5)

	_, err := e.PeriodAverage("BRA", 2010, 2013)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got: %v", err)
	}
}

func TestWorldAverageTwoLevel(t *testing.T) {
	// 2010 has two countries (mean 0.3), 2011 has one (mean 0.6).
	// Year means averaged: 0.45. A pooled row mean would give 0.4,
	// overweighting the better-covered year.
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{
			score("AAA", 2010, 0.2, 1),
			score("BBB", 2010, 0.4, 2),
			score("AAA", 2011, 0.6, 1),
		},
	}, 5)

	avg, err := e.WorldAverage(2010, 2011)
	if err != nil {
		t.Fatalf("WorldAverage failed: %v", err)
	}
	if math.Abs(avg.Total-0.45) > 1e-12 {
		t.Errorf("expected two-level mean 0.45, got %v", avg.Total)
	}
	if avg.Years != 2 {
		t.Errorf("expected 2 contributing years, got %d", avg.Years)
	}
}

func TestWorldAverageOrderInvariant(t *testing.T) {
	rows := []models.CountryYearScore{
		score("AAA", 2010, 0.1, 1),
		score("BBB", 2010, 0.5, 2),
		score("CCC", 2010, 0.9, 3),
	}
	reversed := []models.CountryYearScore{rows[2], rows[0], rows[1]}

	e1 := newTestEngine(t, dataset.Tables{Scores: rows}, 5)
	e2 := newTestEngine(t, dataset.Tables{Scores: reversed}, 5)

	a1, err := e1.WorldAverage(2008, 2012)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := e2.WorldAverage(2008, 2012)
	if err != nil {
		t.Fatal(err)
	}
	if a1 != a2 {
		t.Errorf("world average depends on row order: %+v vs %+v", a1, a2)
	}
}

func TestWorldAverageNoData(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{score("AAA", 2000, 0.5, 1)},
	}, 5)

	_, err := e.WorldAverage(2010, 2012)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got: %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	e := newTestEngine(t, dataset.Tables{
		Scores: []models.CountryYearScore{score("FRA", 2010, 0.7, 3)},
	}, 5)

	row, ok := e.Snapshot("FRA", 2010)
	if !ok || row.TotalRank != 3 {
		t.Errorf("Snapshot(FRA, 2010) = %+v/%v", row, ok)
	}
	if _, ok := e.Snapshot("FRA", 2011); ok {
		t.Error("expected missing snapshot")
	}
}
