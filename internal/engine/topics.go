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

// TopicBreakdown aggregates the country's votes per topic over the
// period, paired with the world support rate for the same topics.
//
// Counts are summed across the range before dividing, so high-volume
// years weigh more than sparse ones. A topic whose summed volume is
// zero still appears in the breakdown with a nil support rate; topics
// with no rows at all in range are omitted. Results are in lexical
// topic order.
func (e *Engine) TopicBreakdown(country string, startYear, endYear int) ([]models.TopicStanding, error) {
	var out []models.TopicStanding

	for _, topic := range e.store.TopicsFor(country) {
		var standing models.TopicStanding
		standing.Topic = topic
		rows := 0

		for y := startYear; y <= endYear; y++ {
			row, ok := e.store.TopicTally(country, topic, y)
			if !ok {
				continue
			}
			standing.YesCount += row.YesCount
			standing.NoCount += row.NoCount
			standing.AbstainCount += row.AbstainCount
			rows++
		}
		if rows == 0 {
			continue
		}

		if total := standing.YesCount + standing.NoCount + standing.AbstainCount; total > 0 {
			rate := float64(standing.YesCount) / float64(total)
			standing.CountrySupportRate = &rate
		}
		standing.WorldSupportRate = e.worldSupportRate(topic, startYear, endYear)

		out = append(out, standing)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s has no topic votes in %d-%d",
			ErrInsufficientData, country, startYear, endYear)
	}
	return out, nil
}

// worldSupportRate computes the all-country support rate for a topic
// over the period, nil when the world volume is zero.
func (e *Engine) worldSupportRate(topic string, startYear, endYear int) *float64 {
	var yes, total int
	for y := startYear; y <= endYear; y++ {
		row, ok := e.store.WorldTopicTally(topic, y)
		if !ok {
			continue
		}
		yes += row.YesCount
		total += row.TotalVotes()
	}
	if total == 0 {
		return nil
	}
	rate := float64(yes) / float64(total)
	return &rate
}

// TopicExtremes returns the top-k most supported and most opposed
// topics for the period. Topics without a support rate (zero volume)
// are excluded; ties are broken by topic name ascending.
func (e *Engine) TopicExtremes(country string, startYear, endYear int) (*models.TopicExtremes, error) {
	breakdown, err := e.TopicBreakdown(country, startYear, endYear)
	if err != nil {
		return nil, err
	}
	return e.extremesOf(breakdown), nil
}

// extremesOf derives the extreme lists from an existing breakdown,
// letting the report assembler reuse one aggregation pass. Returns nil
// when no topic carries a rate.
func (e *Engine) extremesOf(breakdown []models.TopicStanding) *models.TopicExtremes {
	var rated []models.TopicStanding
	for _, standing := range breakdown {
		if standing.CountrySupportRate != nil {
			rated = append(rated, standing)
		}
	}
	if len(rated) == 0 {
		return nil
	}

	supported := make([]models.TopicStanding, len(rated))
	copy(supported, rated)
	// Breakdown order is lexical, so the stable sorts break rate ties
	// by topic name ascending.
	sort.SliceStable(supported, func(i, j int) bool {
		return *supported[i].CountrySupportRate > *supported[j].CountrySupportRate
	})

	opposed := make([]models.TopicStanding, len(rated))
	copy(opposed, rated)
	sort.SliceStable(opposed, func(i, j int) bool {
		return *opposed[i].CountrySupportRate < *opposed[j].CountrySupportRate
	})

	k := e.topK
	if k > len(rated) {
		k = len(rated)
	}
	return &models.TopicExtremes{
		TopSupported: supported[:k],
		TopOpposed:   opposed[:k],
	}
}
