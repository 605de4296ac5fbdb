// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

// Package api provides the HTTP layer: chi routing, request parsing
// and validation, engine error mapping, and the JSON response
// envelope.
//
// All endpoints are read-only GETs under /api/v1. Engine errors map to
// stable error codes: INVALID_RANGE (400), COUNTRY_NOT_FOUND (404),
// INSUFFICIENT_DATA (422); malformed parameters are VALIDATION_ERROR
// (400) before the engine is ever invoked.
package api
