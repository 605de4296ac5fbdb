// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/plenumhq/plenum/internal/logging"
	"github.com/plenumhq/plenum/internal/metrics"
)

// Rankings handles GET /api/v1/rankings/{year}. It returns the four
// ranking lists for the year with 1-year and 10-year deltas.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	yearParam := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"year must be an integer", nil)
		return
	}

	snapshot, err := h.engine.RankingsForYear(year)
	if err != nil {
		status, code, outcome := engineOutcome(err)
		metrics.RecordRankingBuild(outcome, time.Since(started))
		respondError(w, status, code, err.Error(), err)
		return
	}
	metrics.RecordRankingBuild(metrics.OutcomeSuccess, time.Since(started))

	logging.Ctx(r.Context()).Debug().
		Int("year", year).
		Int("countries", len(snapshot.Average)).
		Bool("partial_deltas", snapshot.Message != "").
		Msg("Rankings built")

	respondSuccess(w, snapshot, started)
}
