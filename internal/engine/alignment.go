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

// P5 lists the permanent Security Council members in the fixed
// iteration order used for tie-breaking. The order is load-bearing:
// on an exact similarity tie the earlier member wins, keeping results
// deterministic regardless of table order.
var P5 = [5]string{"CHN", "FRA", "RUS", "GBR", "USA"}

// peerAverage computes the average pairwise similarity between country
// and peer over the years in range where a value exists. ok is false
// when there are no overlapping years.
func (e *Engine) peerAverage(country, peer string, startYear, endYear int) (models.PeerScore, bool) {
	var sum float64
	years := 0

	for y := startYear; y <= endYear; y++ {
		if score, ok := e.store.Similarity(country, peer, y); ok {
			sum += score
			years++
		}
	}

	if years == 0 {
		return models.PeerScore{}, false
	}
	return models.PeerScore{
		Country: peer,
		Score:   sum / float64(years),
		Years:   years,
	}, true
}

// P5Alignment returns the most and least aligned P5 members for the
// period. A P5 country is compared against the remaining four, never
// against itself. Fails with ErrPeerNotFound when no member has
// overlapping similarity data.
func (e *Engine) P5Alignment(country string, startYear, endYear int) (*models.P5Alignment, error) {
	var candidates []models.PeerScore
	for _, member := range P5 {
		if member == country {
			continue
		}
		if ps, ok := e.peerAverage(country, member, startYear, endYear); ok {
			candidates = append(candidates, ps)
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no P5 similarity data for %s in %d-%d",
			ErrPeerNotFound, country, startYear, endYear)
	}

	// Strict comparisons keep the first candidate on ties, which is
	// the fixed P5 order.
	most, least := candidates[0], candidates[0]
	for _, ps := range candidates[1:] {
		if ps.Score > most.Score {
			most = ps
		}
		if ps.Score < least.Score {
			least = ps
		}
	}

	return &models.P5Alignment{Most: most, Least: least}, nil
}

// RegionalAlignment ranks the country's regional peers by average
// similarity over the period. Peers with no overlapping years are
// excluded. AverageScore is the mean across the included peers.
func (e *Engine) RegionalAlignment(country string, startYear, endYear int) (*models.RegionalAlignment, error) {
	region, ok := e.store.Region(country)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no region mapping", ErrPeerNotFound, country)
	}

	var peers []models.PeerScore
	var sum float64
	for _, peer := range e.store.CountriesInRegion(region) {
		if peer == country {
			continue
		}
		if ps, ok := e.peerAverage(country, peer, startYear, endYear); ok {
			peers = append(peers, ps)
			sum += ps.Score
		}
	}

	if len(peers) == 0 {
		return nil, fmt.Errorf("%w: no regional similarity data for %s in %d-%d",
			ErrPeerNotFound, country, startYear, endYear)
	}

	// Candidates arrive in lexical order; the stable sort keeps that
	// order on score ties.
	sort.SliceStable(peers, func(i, j int) bool {
		return peers[i].Score > peers[j].Score
	})

	return &models.RegionalAlignment{
		Region:       region,
		Peers:        peers,
		AverageScore: sum / float64(len(peers)),
	}, nil
}

// TopAlliesEnemies ranks every other country in the dataset by average
// similarity and returns the top-k of each end: allies descending,
// enemies ascending. Countries with no overlapping years are excluded
// from both lists.
func (e *Engine) TopAlliesEnemies(country string, startYear, endYear int) (*models.AlliesEnemies, error) {
	var scored []models.PeerScore
	for _, peer := range e.store.Countries() {
		if peer == country {
			continue
		}
		if ps, ok := e.peerAverage(country, peer, startYear, endYear); ok {
			scored = append(scored, ps)
		}
	}

	if len(scored) == 0 {
		return nil, fmt.Errorf("%w: no similarity data for %s in %d-%d",
			ErrPeerNotFound, country, startYear, endYear)
	}

	allies := make([]models.PeerScore, len(scored))
	copy(allies, scored)
	sort.SliceStable(allies, func(i, j int) bool {
		return allies[i].Score > allies[j].Score
	})

	enemies := make([]models.PeerScore, len(scored))
	copy(enemies, scored)
	sort.SliceStable(enemies, func(i, j int) bool {
		return enemies[i].Score < enemies[j].Score
	})

	k := e.topK
	if k > len(scored) {
		k = len(scored)
	}
	return &models.AlliesEnemies{
		Allies:  allies[:k],
		Enemies: enemies[:k],
	}, nil
}
