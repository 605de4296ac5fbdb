// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/plenumhq/plenum/internal/config"
	"github.com/plenumhq/plenum/internal/logging"
	"github.com/plenumhq/plenum/internal/models"
)

// Load reads the five CSV tables through an in-memory DuckDB instance
// and builds the immutable Store. DuckDB handles CSV dialect quirks
// (quoting, type inference) that a hand-rolled parser would get wrong;
// the instance is discarded once the rows are in memory.
func Load(ctx context.Context, cfg config.DatasetConfig) (*Store, error) {
	start := time.Now()
	log := logging.WithComponent("dataset")

	db, err := openDuckDB(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var tables Tables
	if tables.Scores, err = loadScores(ctx, db, cfg.Path(cfg.ScoresFile)); err != nil {
		return nil, fmt.Errorf("loading scores table: %w", err)
	}
	if tables.Similarity, err = loadSimilarity(ctx, db, cfg.Path(cfg.SimilarityFile)); err != nil {
		return nil, fmt.Errorf("loading similarity table: %w", err)
	}
	if tables.Topics, err = loadTopics(ctx, db, cfg.Path(cfg.TopicsFile)); err != nil {
		return nil, fmt.Errorf("loading topics table: %w", err)
	}
	if tables.Regions, err = loadRegions(ctx, db, cfg.Path(cfg.RegionsFile)); err != nil {
		return nil, fmt.Errorf("loading regions table: %w", err)
	}
	if tables.Flags, err = loadFlags(ctx, db, cfg.Path(cfg.FlagsFile)); err != nil {
		return nil, fmt.Errorf("loading flags table: %w", err)
	}

	store, err := New(tables)
	if err != nil {
		return nil, fmt.Errorf("building dataset store: %w", err)
	}

	counts := store.Counts()
	minYear, maxYear, _ := store.YearRange()
	log.Info().
		Int("scores", counts.Scores).
		Int("similarity", counts.Similarity).
		Int("topics", counts.Topics).
		Int("regions", counts.Regions).
		Int("flags", counts.Flags).
		Int("countries", len(store.Countries())).
		Int("min_year", minYear).
		Int("max_year", maxYear).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset loaded")

	return store, nil
}

// openDuckDB opens an in-memory DuckDB connection tuned for the load
// phase. Extension auto-install is disabled to avoid network access in
// restricted environments.
func openDuckDB(cfg config.DatasetConfig) (*sql.DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	connStr := fmt.Sprintf(
		":memory:?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		threads, cfg.MaxMemory)

	db, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}
	return db, nil
}

// quotePath embeds a file path in a SQL string literal. read_csv is a
// table function, so the path cannot be a bind parameter.
func quotePath(path string) string {
	return "'" + strings.ReplaceAll(path, "'", "''") + "'"
}

func loadScores(ctx context.Context, db *sql.DB, path string) ([]models.CountryYearScore, error) {
	query := fmt.Sprintf(`
		SELECT country_iso3, year,
		       pillar_1, pillar_2, pillar_3, total_index,
		       pillar_1_rank, pillar_2_rank, pillar_3_rank, total_rank
		FROM read_csv(%s, header = true)
		ORDER BY country_iso3, year`, quotePath(path))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CountryYearScore
	for rows.Next() {
		var r models.CountryYearScore
		if err := rows.Scan(&r.Country, &r.Year,
			&r.Pillar1, &r.Pillar2, &r.Pillar3, &r.TotalIndex,
			&r.Pillar1Rank, &r.Pillar2Rank, &r.Pillar3Rank, &r.TotalRank); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadSimilarity(ctx context.Context, db *sql.DB, path string) ([]models.PairwiseSimilarity, error) {
	query := fmt.Sprintf(`
		SELECT country_a, country_b, year, similarity_score
		FROM read_csv(%s, header = true)
		ORDER BY country_a, country_b, year`, quotePath(path))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PairwiseSimilarity
	for rows.Next() {
		var r models.PairwiseSimilarity
		if err := rows.Scan(&r.CountryA, &r.CountryB, &r.Year, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadTopics(ctx context.Context, db *sql.DB, path string) ([]models.TopicVote, error) {
	query := fmt.Sprintf(`
		SELECT country_iso3, year, topic, yes_count, no_count, abstain_count
		FROM read_csv(%s, header = true)
		ORDER BY country_iso3, topic, year`, quotePath(path))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TopicVote
	for rows.Next() {
		var r models.TopicVote
		if err := rows.Scan(&r.Country, &r.Year, &r.Topic,
			&r.YesCount, &r.NoCount, &r.AbstainCount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadRegions(ctx context.Context, db *sql.DB, path string) ([]models.RegionMapping, error) {
	query := fmt.Sprintf(`
		SELECT country_iso3, region
		FROM read_csv(%s, header = true)
		ORDER BY country_iso3`, quotePath(path))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RegionMapping
	for rows.Next() {
		var r models.RegionMapping
		if err := rows.Scan(&r.Country, &r.Region); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadFlags(ctx context.Context, db *sql.DB, path string) ([]FlagRow, error) {
	query := fmt.Sprintf(`
		SELECT country_iso3,
		       is_oecd, is_g20,
		       is_top_50_gdp, is_bottom_50_gdp,
		       is_top_50_population, is_bottom_50_population
		FROM read_csv(%s, header = true)
		ORDER BY country_iso3`, quotePath(path))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FlagRow
	for rows.Next() {
		var r FlagRow
		if err := rows.Scan(&r.Country,
			&r.Flags.IsOECD, &r.Flags.IsG20,
			&r.Flags.IsTop50GDP, &r.Flags.IsBottom50GDP,
			&r.Flags.IsTop50Population, &r.Flags.IsBottom50Population); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
