// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package engine

import (
	"errors"
	"fmt"

	"github.com/plenumhq/plenum/internal/models"
)

// BuildReport assembles the full single-country report for the period.
//
// Structural failures abort the whole request: ErrInvalidRange before
// any computation, ErrCountryNotFound for a country with no rows at
// all, ErrInsufficientData when no year in range is usable. Sparse
// sub-sections (P5 alignment, regional context, allies/enemies,
// topics) degrade to nil with an entry in Notes instead.
func (e *Engine) BuildReport(country string, startYear, endYear int) (*models.Report, error) {
	if err := ValidateRange(startYear, endYear); err != nil {
		return nil, err
	}
	if !e.store.HasCountry(country) {
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, country)
	}

	periodAvg, err := e.PeriodAverage(country, startYear, endYear)
	if err != nil {
		return nil, err
	}
	worldAvg, err := e.WorldAverage(startYear, endYear)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Meta: models.ReportMeta{
			Country:       country,
			StartYear:     startYear,
			EndYear:       endYear,
			YearsWithData: periodAvg.Years,
		},
		PeriodAverages: periodAvg,
		WorldAverages:  worldAvg,
		IndexAnalysis:  e.indexAnalysis(country, startYear, endYear),
		TimeSeries:     e.timeSeries(country, startYear, endYear),
	}
	if region, ok := e.store.Region(country); ok {
		report.Meta.Region = region
	}

	if p5, err := e.P5Alignment(country, startYear, endYear); err == nil {
		report.P5 = p5
	} else if errors.Is(err, ErrPeerNotFound) {
		report.Notes = append(report.Notes, "p5_alignment unavailable: no overlapping similarity data")
	} else {
		return nil, err
	}

	if regional, err := e.RegionalAlignment(country, startYear, endYear); err == nil {
		report.Regional = regional
	} else if errors.Is(err, ErrPeerNotFound) {
		report.Notes = append(report.Notes, "regional_context unavailable: no regional similarity data")
	} else {
		return nil, err
	}

	if alliesEnemies, err := e.TopAlliesEnemies(country, startYear, endYear); err == nil {
		report.AlliesEnemies = alliesEnemies
	} else if errors.Is(err, ErrPeerNotFound) {
		report.Notes = append(report.Notes, "allies_enemies unavailable: no similarity data")
	} else {
		return nil, err
	}

	if breakdown, err := e.TopicBreakdown(country, startYear, endYear); err == nil {
		report.VotingBehavior = breakdown
		if extremes := e.extremesOf(breakdown); extremes != nil {
			report.TopicExtremes = extremes
		} else {
			report.Notes = append(report.Notes, "topic_extremes unavailable: no topic has recorded votes")
		}
	} else if errors.Is(err, ErrInsufficientData) {
		report.Notes = append(report.Notes, "voting_behavior unavailable: no topic votes in range")
	} else {
		return nil, err
	}

	return report, nil
}

// indexAnalysis compares the country's first and last reported years
// within the range. Deltas follow the ranking convention: RankChange
// is start rank minus end rank, positive for improvement.
func (e *Engine) indexAnalysis(country string, startYear, endYear int) models.IndexAnalysis {
	var analysis models.IndexAnalysis

	for y := startYear; y <= endYear; y++ {
		if row, ok := e.store.Score(country, y); ok {
			r := row
			analysis.StartSnapshot = &r
			break
		}
	}
	for y := endYear; y >= startYear; y-- {
		if row, ok := e.store.Score(country, y); ok {
			r := row
			analysis.EndSnapshot = &r
			break
		}
	}

	if analysis.StartSnapshot != nil && analysis.EndSnapshot != nil &&
		analysis.StartSnapshot.Year != analysis.EndSnapshot.Year {
		rankChange := analysis.StartSnapshot.TotalRank - analysis.EndSnapshot.TotalRank
		valueChange := analysis.EndSnapshot.TotalIndex - analysis.StartSnapshot.TotalIndex
		analysis.RankChange = &rankChange
		analysis.ValueChange = &valueChange
	}
	return analysis
}

// timeSeries returns the country's score rows within range, ordered by
// year ascending.
func (e *Engine) timeSeries(country string, startYear, endYear int) []models.CountryYearScore {
	var series []models.CountryYearScore
	for y := startYear; y <= endYear; y++ {
		if row, ok := e.store.Score(country, y); ok {
			series = append(series, row)
		}
	}
	return series
}
