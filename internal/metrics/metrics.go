// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

// Package metrics exposes Prometheus instrumentation for the HTTP
// layer, the engine, and the dataset load. Metrics are registered via
// promauto at package init and served on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Engine metrics
	ReportBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_report_builds_total",
			Help: "Total number of report builds by outcome",
		},
		[]string{"outcome"},
	)

	ReportBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_report_build_duration_seconds",
			Help:    "Report build duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RankingBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_ranking_builds_total",
			Help: "Total number of ranking builds by outcome",
		},
		[]string{"outcome"},
	)

	RankingBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_ranking_build_duration_seconds",
			Help:    "Ranking build duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Dataset metrics
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Rows loaded per input table",
		},
		[]string{"table"},
	)

	DatasetLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_load_duration_seconds",
			Help: "Duration of the startup dataset load in seconds",
		},
	)
)

// Outcome labels for engine build counters.
const (
	OutcomeSuccess          = "success"
	OutcomeInvalidRange     = "invalid_range"
	OutcomeCountryNotFound  = "country_not_found"
	OutcomeInsufficientData = "insufficient_data"
	OutcomeError            = "error"
)

// RecordAPIRequest records one finished API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordReportBuild records one report build attempt.
func RecordReportBuild(outcome string, duration time.Duration) {
	ReportBuilds.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		ReportBuildDuration.Observe(duration.Seconds())
	}
}

// RecordRankingBuild records one ranking build attempt.
func RecordRankingBuild(outcome string, duration time.Duration) {
	RankingBuilds.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		RankingBuildDuration.Observe(duration.Seconds())
	}
}

// SetDatasetStats publishes the dataset load results.
func SetDatasetStats(rowsByTable map[string]int, loadDuration time.Duration) {
	for table, rows := range rowsByTable {
		DatasetRows.WithLabelValues(table).Set(float64(rows))
	}
	DatasetLoadDuration.Set(loadDuration.Seconds())
}
