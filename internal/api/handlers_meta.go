// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package api

import (
	"net/http"
	"time"

	"github.com/plenumhq/plenum/internal/dataset"
	"github.com/plenumhq/plenum/internal/engine"
	"github.com/plenumhq/plenum/internal/models"
)

// healthStatus is the payload of the full health endpoint.
type healthStatus struct {
	Status        string            `json:"status"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	Dataset       dataset.RowCounts `json:"dataset"`
	Countries     int               `json:"countries"`
	Topics        int               `json:"topics"`
	MinYear       int               `json:"min_year"`
	MaxYear       int               `json:"max_year"`
}

// countryInfo is one entry of the countries listing.
type countryInfo struct {
	Country string                     `json:"country_iso3"`
	Region  string                     `json:"region,omitempty"`
	Flags   models.ClassificationFlags `json:"classification"`
}

// yearBounds describes the dataset coverage and the accepted request
// bounds.
type yearBounds struct {
	MinYear          int `json:"min_year"`
	MaxYear          int `json:"max_year"`
	DatasetFirstYear int `json:"dataset_first_year"`
	DatasetLastYear  int `json:"dataset_last_year"`
}

// Health handles GET /api/v1/health with dataset statistics.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	minYear, maxYear, _ := h.store.YearRange()

	respondSuccess(w, healthStatus{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Dataset:       h.store.Counts(),
		Countries:     len(h.store.Countries()),
		Topics:        len(h.store.Topics()),
		MinYear:       minYear,
		MaxYear:       maxYear,
	}, started)
}

// HealthLive handles GET /api/v1/health/live. It answers as soon as
// the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady handles GET /api/v1/health/ready. Ready means the
// dataset finished loading with at least one score row; the engine is
// not queryable before that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.store.Counts().Scores == 0 {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"dataset is empty or not loaded", nil)
		return
	}
	respondSuccess(w, map[string]string{"status": "ready"}, time.Now())
}

// Countries handles GET /api/v1/countries: every country in the scores
// table with its region and classification flags, in lexical order.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	countries := h.store.Countries()
	out := make([]countryInfo, 0, len(countries))
	for _, country := range countries {
		info := countryInfo{
			Country: country,
			Flags:   h.store.Flags(country),
		}
		if region, ok := h.store.Region(country); ok {
			info.Region = region
		}
		out = append(out, info)
	}
	respondSuccess(w, out, started)
}

// Topics handles GET /api/v1/topics: all topics in lexical order.
func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.store.Topics(), time.Now())
}

// Years handles GET /api/v1/years: accepted request bounds plus the
// actual dataset coverage.
func (h *Handler) Years(w http.ResponseWriter, r *http.Request) {
	first, last, _ := h.store.YearRange()
	respondSuccess(w, yearBounds{
		MinYear:          engine.MinYear,
		MaxYear:          engine.MaxYear,
		DatasetFirstYear: first,
		DatasetLastYear:  last,
	}, time.Now())
}
