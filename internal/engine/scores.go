// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package engine

import (
	"fmt"

	"github.com/plenumhq/plenum/internal/models"
)

// PeriodAverage returns the arithmetic mean of the country's pillar
// scores over the years in range where it has a row. Missing years are
// excluded from the mean, never substituted with zero. Fails with
// ErrInsufficientData when no year in range has a row.
//
// Range preconditions (bounds, span) are the caller's responsibility;
// see ValidateRange.
func (e *Engine) PeriodAverage(country string, startYear, endYear int) (models.PillarAverages, error) {
	var sum1, sum2, sum3, sumTotal float64
	years := 0

	for y := startYear; y <= endYear; y++ {
		row, ok := e.store.Score(country, y)
		if !ok {
			continue
		}
		sum1 += row.Pillar1
		sum2 += row.Pillar2
		sum3 += row.Pillar3
		sumTotal += row.TotalIndex
		years++
	}

	if years == 0 {
		return models.PillarAverages{}, fmt.Errorf("%w: %s has no rows in %d-%d",
			ErrInsufficientData, country, startYear, endYear)
	}

	n := float64(years)
	return models.PillarAverages{
		Pillar1: sum1 / n,
		Pillar2: sum2 / n,
		Pillar3: sum3 / n,
		Total:   sumTotal / n,
		Years:   years,
	}, nil
}

// WorldAverage returns the world baseline over the period. Averaging
// is two-level: first a per-year mean across all countries reporting
// that year, then a mean of the yearly means. Each year therefore
// contributes equally regardless of how many countries reported in it.
func (e *Engine) WorldAverage(startYear, endYear int) (models.PillarAverages, error) {
	var sum1, sum2, sum3, sumTotal float64
	years := 0

	for y := startYear; y <= endYear; y++ {
		countries := e.store.CountriesInYear(y)
		if len(countries) == 0 {
			continue
		}

		var y1, y2, y3, yTotal float64
		for _, c := range countries {
			row, _ := e.store.Score(c, y)
			y1 += row.Pillar1
			y2 += row.Pillar2
			y3 += row.Pillar3
			yTotal += row.TotalIndex
		}

		n := float64(len(countries))
		sum1 += y1 / n
		sum2 += y2 / n
		sum3 += y3 / n
		sumTotal += yTotal / n
		years++
	}

	if years == 0 {
		return models.PillarAverages{}, fmt.Errorf("%w: no country has rows in %d-%d",
			ErrInsufficientData, startYear, endYear)
	}

	n := float64(years)
	return models.PillarAverages{
		Pillar1: sum1 / n,
		Pillar2: sum2 / n,
		Pillar3: sum3 / n,
		Total:   sumTotal / n,
		Years:   years,
	}, nil
}

// Snapshot returns the country's score row for one year.
func (e *Engine) Snapshot(country string, year int) (models.CountryYearScore, bool) {
	return e.store.Score(country, year)
}
