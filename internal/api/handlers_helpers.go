// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/plenumhq/plenum/internal/engine"
	"github.com/plenumhq/plenum/internal/logging"
	"github.com/plenumhq/plenum/internal/metrics"
	"github.com/plenumhq/plenum/internal/models"
	"github.com/plenumhq/plenum/internal/validation"
)

// sanitizeLogValue removes control characters from strings before
// logging them, preventing log injection through request parameters.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with caching headers and an ETag
// derived from the payload. Reports are deterministic per dataset, so
// the ETag is stable across identical requests.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates an ETag from the payload using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondSuccess sends a success envelope with query timing metadata.
func respondSuccess(w http.ResponseWriter, data interface{}, started time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(started).Milliseconds(),
		},
	})
}

// validateRequest validates a struct and converts failures to the
// models.APIError format. Returns nil when validation passes.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// engineOutcome maps an engine error to the HTTP status, API error
// code, and metric outcome label.
func engineOutcome(err error) (status int, code, outcome string) {
	switch {
	case errors.Is(err, engine.ErrInvalidRange):
		return http.StatusBadRequest, "INVALID_RANGE", metrics.OutcomeInvalidRange
	case errors.Is(err, engine.ErrCountryNotFound):
		return http.StatusNotFound, "COUNTRY_NOT_FOUND", metrics.OutcomeCountryNotFound
	case errors.Is(err, engine.ErrInsufficientData):
		return http.StatusUnprocessableEntity, "INSUFFICIENT_DATA", metrics.OutcomeInsufficientData
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", metrics.OutcomeError
	}
}
