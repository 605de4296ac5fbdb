// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package dataset

import (
	"fmt"
	"sort"

	"github.com/plenumhq/plenum/internal/models"
)

// Tables holds the raw rows of the five input tables. Load produces
// one from the CSV files; tests build them directly.
type Tables struct {
	Scores     []models.CountryYearScore
	Similarity []models.PairwiseSimilarity
	Topics     []models.TopicVote
	Regions    []models.RegionMapping
	Flags      []FlagRow
}

// FlagRow pairs a country with its classification flags.
type FlagRow struct {
	Country string
	Flags   models.ClassificationFlags
}

// RowCounts reports how many rows each table contributed.
type RowCounts struct {
	Scores     int `json:"scores"`
	Similarity int `json:"similarity"`
	Topics     int `json:"topics"`
	Regions    int `json:"regions"`
	Flags      int `json:"flags"`
}

// simKey identifies a similarity entry. The pair is normalized so that
// A < B lexically, making lookups order-independent.
type simKey struct {
	a, b string
	year int
}

func newSimKey(a, b string, year int) simKey {
	if a > b {
		a, b = b, a
	}
	return simKey{a: a, b: b, year: year}
}

// Store is the immutable in-memory dataset. It is built once at
// startup and never mutated afterwards, so all accessors are safe for
// concurrent use without locking.
//
// Malformed rows are rejected by New; the engine can therefore assume
// every row it sees is well-formed.
type Store struct {
	scores        map[string]map[int]models.CountryYearScore
	similarity    map[simKey]float64
	topics        map[string]map[string]map[int]models.TopicVote
	worldTopics   map[string]map[int]models.TopicVote
	topicNames    []string
	regions       map[string]string
	regionMembers map[string][]string
	flags         map[string]models.ClassificationFlags

	countries     []string
	yearCountries map[int][]string
	minYear       int
	maxYear       int

	counts RowCounts
}

// New builds a Store from raw table rows, validating every row.
// Duplicate keys, empty identifiers, non-positive years and negative
// vote counts are load-time errors.
func New(t Tables) (*Store, error) {
	s := &Store{
		scores:        make(map[string]map[int]models.CountryYearScore),
		similarity:    make(map[simKey]float64),
		topics:        make(map[string]map[string]map[int]models.TopicVote),
		worldTopics:   make(map[string]map[int]models.TopicVote),
		regions:       make(map[string]string),
		regionMembers: make(map[string][]string),
		flags:         make(map[string]models.ClassificationFlags),
		yearCountries: make(map[int][]string),
		counts: RowCounts{
			Scores:     len(t.Scores),
			Similarity: len(t.Similarity),
			Topics:     len(t.Topics),
			Regions:    len(t.Regions),
			Flags:      len(t.Flags),
		},
	}

	for i, row := range t.Scores {
		if row.Country == "" {
			return nil, fmt.Errorf("scores row %d: empty country code", i)
		}
		if row.Year <= 0 {
			return nil, fmt.Errorf("scores row %d (%s): invalid year %d", i, row.Country, row.Year)
		}
		years, ok := s.scores[row.Country]
		if !ok {
			years = make(map[int]models.CountryYearScore)
			s.scores[row.Country] = years
		}
		if _, dup := years[row.Year]; dup {
			return nil, fmt.Errorf("scores row %d: duplicate entry for %s/%d", i, row.Country, row.Year)
		}
		years[row.Year] = row
		if s.minYear == 0 || row.Year < s.minYear {
			s.minYear = row.Year
		}
		if row.Year > s.maxYear {
			s.maxYear = row.Year
		}
	}

	for i, row := range t.Similarity {
		if row.CountryA == "" || row.CountryB == "" {
			return nil, fmt.Errorf("similarity row %d: empty country code", i)
		}
		if row.CountryA == row.CountryB {
			return nil, fmt.Errorf("similarity row %d: self-pair %s/%d", i, row.CountryA, row.Year)
		}
		if row.Year <= 0 {
			return nil, fmt.Errorf("similarity row %d: invalid year %d", i, row.Year)
		}
		key := newSimKey(row.CountryA, row.CountryB, row.Year)
		if _, dup := s.similarity[key]; dup {
			return nil, fmt.Errorf("similarity row %d: duplicate pair %s-%s/%d", i, key.a, key.b, key.year)
		}
		s.similarity[key] = row.Score
	}

	topicSet := make(map[string]struct{})
	for i, row := range t.Topics {
		if row.Country == "" {
			return nil, fmt.Errorf("topics row %d: empty country code", i)
		}
		if row.Topic == "" {
			return nil, fmt.Errorf("topics row %d (%s): empty topic", i, row.Country)
		}
		if row.Year <= 0 {
			return nil, fmt.Errorf("topics row %d (%s): invalid year %d", i, row.Country, row.Year)
		}
		if row.YesCount < 0 || row.NoCount < 0 || row.AbstainCount < 0 {
			return nil, fmt.Errorf("topics row %d (%s/%s/%d): negative vote count",
				i, row.Country, row.Topic, row.Year)
		}
		byTopic, ok := s.topics[row.Country]
		if !ok {
			byTopic = make(map[string]map[int]models.TopicVote)
			s.topics[row.Country] = byTopic
		}
		byYear, ok := byTopic[row.Topic]
		if !ok {
			byYear = make(map[int]models.TopicVote)
			byTopic[row.Topic] = byYear
		}
		if _, dup := byYear[row.Year]; dup {
			return nil, fmt.Errorf("topics row %d: duplicate entry for %s/%s/%d",
				i, row.Country, row.Topic, row.Year)
		}
		byYear[row.Year] = row
		topicSet[row.Topic] = struct{}{}

		world, ok := s.worldTopics[row.Topic]
		if !ok {
			world = make(map[int]models.TopicVote)
			s.worldTopics[row.Topic] = world
		}
		tally := world[row.Year]
		tally.Topic = row.Topic
		tally.Year = row.Year
		tally.YesCount += row.YesCount
		tally.NoCount += row.NoCount
		tally.AbstainCount += row.AbstainCount
		world[row.Year] = tally
	}

	for i, row := range t.Regions {
		if row.Country == "" || row.Region == "" {
			return nil, fmt.Errorf("regions row %d: empty country or region", i)
		}
		if existing, dup := s.regions[row.Country]; dup {
			return nil, fmt.Errorf("regions row %d: %s already mapped to %s", i, row.Country, existing)
		}
		s.regions[row.Country] = row.Region
		s.regionMembers[row.Region] = append(s.regionMembers[row.Region], row.Country)
	}

	for i, row := range t.Flags {
		if row.Country == "" {
			return nil, fmt.Errorf("flags row %d: empty country code", i)
		}
		if _, dup := s.flags[row.Country]; dup {
			return nil, fmt.Errorf("flags row %d: duplicate entry for %s", i, row.Country)
		}
		s.flags[row.Country] = row.Flags
	}

	s.countries = make([]string, 0, len(s.scores))
	for c := range s.scores {
		s.countries = append(s.countries, c)
	}
	sort.Strings(s.countries)

	for _, c := range s.countries {
		for y := range s.scores[c] {
			s.yearCountries[y] = append(s.yearCountries[y], c)
		}
	}
	for y := range s.yearCountries {
		sort.Strings(s.yearCountries[y])
	}

	for r := range s.regionMembers {
		sort.Strings(s.regionMembers[r])
	}

	s.topicNames = make([]string, 0, len(topicSet))
	for topic := range topicSet {
		s.topicNames = append(s.topicNames, topic)
	}
	sort.Strings(s.topicNames)

	return s, nil
}

// Score returns the score row for (country, year).
func (s *Store) Score(country string, year int) (models.CountryYearScore, bool) {
	row, ok := s.scores[country][year]
	return row, ok
}

// HasCountry reports whether the country appears in the scores table
// for any year.
func (s *Store) HasCountry(country string) bool {
	_, ok := s.scores[country]
	return ok
}

// Countries returns all countries in the scores table, sorted.
func (s *Store) Countries() []string {
	out := make([]string, len(s.countries))
	copy(out, s.countries)
	return out
}

// CountriesInYear returns the countries that have a score row for the
// given year, sorted.
func (s *Store) CountriesInYear(year int) []string {
	members := s.yearCountries[year]
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// Similarity returns the voting similarity between two countries for a
// year. Lookups are order-independent: Similarity(a, b, y) equals
// Similarity(b, a, y).
func (s *Store) Similarity(a, b string, year int) (float64, bool) {
	score, ok := s.similarity[newSimKey(a, b, year)]
	return score, ok
}

// TopicTally returns the vote tally for (country, topic, year).
func (s *Store) TopicTally(country, topic string, year int) (models.TopicVote, bool) {
	row, ok := s.topics[country][topic][year]
	return row, ok
}

// WorldTopicTally returns the vote tally for (topic, year) summed
// across all countries. The Country field of the result is empty.
func (s *Store) WorldTopicTally(topic string, year int) (models.TopicVote, bool) {
	row, ok := s.worldTopics[topic][year]
	return row, ok
}

// Topics returns all topics in the dataset, sorted.
func (s *Store) Topics() []string {
	out := make([]string, len(s.topicNames))
	copy(out, s.topicNames)
	return out
}

// TopicsFor returns the topics the country has at least one vote row
// for, sorted.
func (s *Store) TopicsFor(country string) []string {
	byTopic := s.topics[country]
	out := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}

// Region returns the region of a country.
func (s *Store) Region(country string) (string, bool) {
	region, ok := s.regions[country]
	return region, ok
}

// CountriesInRegion returns the countries mapped to the region, sorted.
// Membership comes from the region table, so a member may have no
// score rows for a given year.
func (s *Store) CountriesInRegion(region string) []string {
	members := s.regionMembers[region]
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// Flags returns the classification flags for a country. A country
// absent from the flags table gets the zero value (all false).
func (s *Store) Flags(country string) models.ClassificationFlags {
	return s.flags[country]
}

// YearRange returns the minimum and maximum year observed in the
// scores table. ok is false for an empty store.
func (s *Store) YearRange() (minYear, maxYear int, ok bool) {
	return s.minYear, s.maxYear, s.minYear != 0
}

// Counts returns the per-table row counts, for startup logging and the
// readiness endpoint.
func (s *Store) Counts() RowCounts {
	return s.counts
}
