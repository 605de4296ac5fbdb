// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package engine

import (
	"fmt"
	"sort"

	"github.com/plenumhq/plenum/internal/models"
)

// pillarSpec extracts one pillar's value and pre-computed rank from a
// score row. The engine trusts the upstream rank columns for the three
// pillars; only the "average" ranking is derived locally.
type pillarSpec struct {
	value func(models.CountryYearScore) float64
	rank  func(models.CountryYearScore) int
}

var (
	pillar1Spec = pillarSpec{
		value: func(r models.CountryYearScore) float64 { return r.Pillar1 },
		rank:  func(r models.CountryYearScore) int { return r.Pillar1Rank },
	}
	pillar2Spec = pillarSpec{
		value: func(r models.CountryYearScore) float64 { return r.Pillar2 },
		rank:  func(r models.CountryYearScore) int { return r.Pillar2Rank },
	}
	pillar3Spec = pillarSpec{
		value: func(r models.CountryYearScore) float64 { return r.Pillar3 },
		rank:  func(r models.CountryYearScore) int { return r.Pillar3Rank },
	}
)

// deltaTracker counts entries whose comparison rows are missing, so
// the snapshot can flag partial delta coverage in one message instead
// of failing.
type deltaTracker struct {
	prevYear      int
	decadeYear    int
	missingPrev   int
	missingDecade int
}

func (d *deltaTracker) message() string {
	switch {
	case d.missingPrev > 0 && d.missingDecade > 0:
		return fmt.Sprintf("partial delta data: %d entries have no %d row, %d entries have no %d row",
			d.missingPrev, d.prevYear, d.missingDecade, d.decadeYear)
	case d.missingPrev > 0:
		return fmt.Sprintf("partial delta data: %d entries have no %d row", d.missingPrev, d.prevYear)
	case d.missingDecade > 0:
		return fmt.Sprintf("partial delta data: %d entries have no %d row", d.missingDecade, d.decadeYear)
	default:
		return ""
	}
}

// RankingsForYear builds the four ranking lists for one year: the
// three pillar rankings ordered by their pre-computed rank columns,
// and a derived "average" ranking ordered by the mean of the three
// pillar scores.
//
// Deltas compare against year-1 and year-10. A country without a row
// in a comparison year gets nil deltas for it, never zero, and the
// snapshot's Message reports the gap.
func (e *Engine) RankingsForYear(year int) (*models.RankingSnapshot, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}

	countries := e.store.CountriesInYear(year)
	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: no country has rows in %d", ErrInsufficientData, year)
	}

	tracker := &deltaTracker{prevYear: year - 1, decadeYear: year - 10}
	snap := &models.RankingSnapshot{
		Year:    year,
		Pillar1: e.pillarRanking(year, countries, pillar1Spec, tracker),
		Pillar2: e.pillarRanking(year, countries, pillar2Spec, tracker),
		Pillar3: e.pillarRanking(year, countries, pillar3Spec, tracker),
	}
	snap.Average = e.averageRanking(year, countries, tracker)
	snap.Message = tracker.message()
	return snap, nil
}

// pillarRanking builds one pillar's list, sorted by the upstream rank
// column ascending. Countries arrive in lexical order, so equal ranks
// stay lexically ordered.
func (e *Engine) pillarRanking(year int, countries []string, spec pillarSpec, tracker *deltaTracker) []models.RankingEntry {
	entries := make([]models.RankingEntry, 0, len(countries))
	for _, country := range countries {
		row, _ := e.store.Score(country, year)
		entry := models.RankingEntry{
			Country: country,
			Value:   spec.value(row),
			Rank:    spec.rank(row),
			Flags:   e.store.Flags(country),
		}

		if prev, ok := e.store.Score(country, year-1); ok {
			rankChange := spec.rank(prev) - entry.Rank
			valueChange := entry.Value - spec.value(prev)
			entry.RankChange = &rankChange
			entry.ValueChange = &valueChange
		} else {
			tracker.missingPrev++
		}
		if decade, ok := e.store.Score(country, year-10); ok {
			rankChange := spec.rank(decade) - entry.Rank
			valueChange := entry.Value - spec.value(decade)
			entry.RankChange10Y = &rankChange
			entry.ValueChange10Y = &valueChange
		} else {
			tracker.missingDecade++
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return entries
}

// avgPos is a country's derived position in the average ranking of
// one year.
type avgPos struct {
	value float64
	rank  int
}

// averagePositions derives the average ranking for a year: mean of the
// three pillar scores, descending, ties broken lexically by country.
// Ranks are 1-based positions. Returns nil for a year with no rows.
func (e *Engine) averagePositions(year int) map[string]avgPos {
	countries := e.store.CountriesInYear(year)
	if len(countries) == 0 {
		return nil
	}

	type cv struct {
		country string
		value   float64
	}
	list := make([]cv, 0, len(countries))
	for _, country := range countries {
		row, _ := e.store.Score(country, year)
		list = append(list, cv{country, (row.Pillar1 + row.Pillar2 + row.Pillar3) / 3})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].value > list[j].value
	})

	positions := make(map[string]avgPos, len(list))
	for i, item := range list {
		positions[item.country] = avgPos{value: item.value, rank: i + 1}
	}
	return positions
}

// averageRanking builds the derived average list with deltas against
// the derived positions of the comparison years.
func (e *Engine) averageRanking(year int, countries []string, tracker *deltaTracker) []models.RankingEntry {
	current := e.averagePositions(year)
	prev := e.averagePositions(year - 1)
	decade := e.averagePositions(year - 10)

	entries := make([]models.RankingEntry, 0, len(countries))
	for _, country := range countries {
		pos := current[country]
		entry := models.RankingEntry{
			Country: country,
			Value:   pos.value,
			Rank:    pos.rank,
			Flags:   e.store.Flags(country),
		}

		if p, ok := prev[country]; ok {
			rankChange := p.rank - entry.Rank
			valueChange := entry.Value - p.value
			entry.RankChange = &rankChange
			entry.ValueChange = &valueChange
		} else {
			tracker.missingPrev++
		}
		if d, ok := decade[country]; ok {
			rankChange := d.rank - entry.Rank
			valueChange := entry.Value - d.value
			entry.RankChange10Y = &rankChange
			entry.ValueChange10Y = &valueChange
		} else {
			tracker.missingDecade++
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return entries
}
