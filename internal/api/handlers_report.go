// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/plenumhq/plenum/internal/logging"
	"github.com/plenumhq/plenum/internal/metrics"
)

// Report handles GET /api/v1/report/{country}?start_year=&end_year=.
// It returns the full single-country report for the period.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	params := ReportParams{
		Country:   chi.URLParam(r, "country"),
		StartYear: parseIntParam(r.URL.Query().Get("start_year")),
		EndYear:   parseIntParam(r.URL.Query().Get("end_year")),
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	report, err := h.engine.BuildReport(params.Country, params.StartYear, params.EndYear)
	if err != nil {
		status, code, outcome := engineOutcome(err)
		metrics.RecordReportBuild(outcome, time.Since(started))
		respondError(w, status, code, err.Error(), err)
		return
	}
	metrics.RecordReportBuild(metrics.OutcomeSuccess, time.Since(started))

	logging.Ctx(r.Context()).Debug().
		Str("country", params.Country).
		Int("start_year", params.StartYear).
		Int("end_year", params.EndYear).
		Int("years_with_data", report.Meta.YearsWithData).
		Int("notes", len(report.Notes)).
		Msg("Report built")

	respondSuccess(w, report, started)
}
