// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package api

import "strconv"

// ReportParams are the inputs of the country report endpoint. The
// validator catches malformed inputs (bad country codes, non-year
// values); range semantics beyond field bounds (ordering, minimum
// span) belong to the engine, which reports them as INVALID_RANGE.
type ReportParams struct {
	Country   string `validate:"required,len=3,alpha,uppercase"`
	StartYear int    `validate:"required,min=1946,max=2024"`
	EndYear   int    `validate:"required,min=1946,max=2024"`
}

// RankingsParams are the inputs of the yearly rankings endpoint. Year
// bounds are left to the engine so out-of-range years surface as
// INVALID_RANGE rather than VALIDATION_ERROR.
type RankingsParams struct {
	Year int `validate:"required"`
}

// parseIntParam parses an integer parameter, returning 0 for empty or
// malformed input so the validator reports it as a field failure.
func parseIntParam(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
