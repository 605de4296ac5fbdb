// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package api

import (
	"time"

	"github.com/plenumhq/plenum/internal/config"
	"github.com/plenumhq/plenum/internal/dataset"
	"github.com/plenumhq/plenum/internal/engine"
)

// Handler holds the dependencies of all HTTP handlers. A single
// instance serves all requests; every field is read-only after
// construction.
type Handler struct {
	engine  *engine.Engine
	store   *dataset.Store
	cfg     *config.Config
	started time.Time
}

// NewHandler creates the handler set over a loaded dataset.
func NewHandler(eng *engine.Engine, store *dataset.Store, cfg *config.Config) *Handler {
	return &Handler{
		engine:  eng,
		store:   store,
		cfg:     cfg,
		started: time.Now(),
	}
}
