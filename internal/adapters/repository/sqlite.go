package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kibisports/matchdesk/internal/domain/model"
)

//go:embed migrations/001_initial.sql
var initialMigration string

// SQLiteStore implements Store on a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies migrations.
func Open(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// sqlite does not support concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	var tables int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='match_runs'
	`).Scan(&tables)
	if err != nil {
		return err
	}
	if tables == 0 {
		if _, err := s.db.Exec(initialMigration); err != nil {
			return err
		}
	}
	return nil
}

// CreateBrief inserts a brief and assigns its ID.
func (s *SQLiteStore) CreateBrief(ctx context.Context, b *model.Brief) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	cats := make([]string, len(b.Categories))
	for i, c := range b.Categories {
		cats[i] = string(c)
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO briefs (
			brand_user_id, campaign_name, objective, sports, target_cities,
			target_states, excluded_categories, asset_categories, budget,
			budget_currency, status, submitted_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.BrandUserID, b.CampaignName, string(b.Objective),
		marshalStrings(b.Sports), marshalStrings(b.TargetCities),
		marshalStrings(b.TargetStates), marshalStrings(b.ExcludedCategories),
		marshalStrings(cats), b.Budget, b.BudgetCurrency, string(b.Status),
		b.SubmittedAt, b.CreatedAt,
	)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	return err
}

// GetBrief returns a brief by ID, or ErrNotFound.
func (s *SQLiteStore) GetBrief(ctx context.Context, id int64) (model.Brief, error) {
	var (
		b                                      model.Brief
		objective, status                      string
		sports, cities, states, excl, catsJSON string
		submittedAt                            sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, brand_user_id, campaign_name, objective, sports,
		       target_cities, target_states, excluded_categories,
		       asset_categories, budget, budget_currency, status,
		       submitted_at, created_at
		FROM briefs WHERE id = ?
	`, id).Scan(
		&b.ID, &b.BrandUserID, &b.CampaignName, &objective, &sports,
		&cities, &states, &excl, &catsJSON, &b.Budget, &b.BudgetCurrency,
		&status, &submittedAt, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Brief{}, ErrNotFound
	}
	if err != nil {
		return model.Brief{}, err
	}
	b.Objective = model.Objective(objective)
	b.Status = model.BriefStatus(status)
	b.Sports = unmarshalStrings(sports)
	b.TargetCities = unmarshalStrings(cities)
	b.TargetStates = unmarshalStrings(states)
	b.ExcludedCategories = unmarshalStrings(excl)
	for _, c := range unmarshalStrings(catsJSON) {
		b.Categories = append(b.Categories, model.Category(c))
	}
	if submittedAt.Valid {
		t := submittedAt.Time
		b.SubmittedAt = &t
	}
	return b, nil
}

// CreateAsset inserts an asset and assigns its ID.
func (s *SQLiteStore) CreateAsset(ctx context.Context, a *model.Asset) error {
	var sport sql.NullString
	supported := "[]"
	if a.Category == model.CategoryVenue {
		supported = marshalStrings(a.Sports)
	} else if len(a.Sports) > 0 {
		sport = sql.NullString{String: a.Sports[0], Valid: true}
	}
	if a.Status == "" {
		a.Status = model.AssetStatusActive
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO assets (
			category, name, sport, sports_supported, city, state, status,
			featured, incompatible_categories, tier, bio, social_followers,
			level, season, venue_type, capacity
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		string(a.Category), a.Name, sport, supported, a.City, a.State,
		a.Status, a.Featured, marshalStrings(a.IncompatibleCategories),
		a.Tier, a.Bio, a.SocialFollowers, a.Level, a.Season, a.VenueType,
		a.Capacity,
	)
	if err != nil {
		return err
	}
	a.ID, err = res.LastInsertId()
	return err
}

// FindActiveAssets returns active assets of one category matching the filter.
func (s *SQLiteStore) FindActiveAssets(ctx context.Context, cat model.Category, f AssetFilter) ([]model.Asset, error) {
	query := `
		SELECT id, category, name, sport, sports_supported, city, state,
		       status, featured, incompatible_categories, tier, bio,
		       social_followers, level, season, venue_type, capacity
		FROM assets WHERE status = ? AND category = ?`
	args := []any{model.AssetStatusActive, string(cat)}

	query, args = appendIn(query, args, "sport", f.Sports)
	query, args = appendIn(query, args, "city", f.Cities)
	query, args = appendIn(query, args, "state", f.States)
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []model.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// SaveRun persists a run and its results in one transaction.
func (s *SQLiteStore) SaveRun(ctx context.Context, run MatchRun, results []MatchResult) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.RanAt.IsZero() {
		run.RanAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO match_runs (id, brief_id, params_json, relaxations_json, total_candidates, ran_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.BriefID, run.ParamsJSON, run.RelaxationsJSON, run.TotalCandidates, run.RanAt)
	if err != nil {
		return "", err
	}

	for _, r := range results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO match_results (match_run_id, asset_category, asset_id, score, rank, breakdown_json)
			VALUES (?, ?, ?, ?, ?, ?)
		`, run.ID, string(r.AssetCategory), r.AssetID, r.Score, r.Rank, r.BreakdownJSON)
		if err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

// LatestRun returns the most recent run for a brief with its results.
func (s *SQLiteStore) LatestRun(ctx context.Context, briefID int64) (MatchRun, []MatchResult, error) {
	var run MatchRun
	err := s.db.QueryRowContext(ctx, `
		SELECT id, brief_id, params_json, relaxations_json, total_candidates, ran_at
		FROM match_runs WHERE brief_id = ?
		ORDER BY ran_at DESC, id DESC LIMIT 1
	`, briefID).Scan(&run.ID, &run.BriefID, &run.ParamsJSON, &run.RelaxationsJSON, &run.TotalCandidates, &run.RanAt)
	if errors.Is(err, sql.ErrNoRows) {
		return MatchRun{}, nil, ErrNotFound
	}
	if err != nil {
		return MatchRun{}, nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, match_run_id, asset_category, asset_id, score, rank, breakdown_json
		FROM match_results WHERE match_run_id = ?
		ORDER BY asset_category, rank
	`, run.ID)
	if err != nil {
		return MatchRun{}, nil, err
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var (
			r   MatchResult
			cat string
		)
		if err := rows.Scan(&r.ID, &r.MatchRunID, &cat, &r.AssetID, &r.Score, &r.Rank, &r.BreakdownJSON); err != nil {
			return MatchRun{}, nil, err
		}
		r.AssetCategory = model.Category(cat)
		results = append(results, r)
	}
	return run, results, rows.Err()
}

func scanAsset(rows *sql.Rows) (model.Asset, error) {
	var (
		a                 model.Asset
		cat               string
		sport             sql.NullString
		supported, incomp string
		tier, bio         sql.NullString
		level, season     sql.NullString
		venueType         sql.NullString
	)
	err := rows.Scan(
		&a.ID, &cat, &a.Name, &sport, &supported, &a.City, &a.State,
		&a.Status, &a.Featured, &incomp, &tier, &bio, &a.SocialFollowers,
		&level, &season, &venueType, &a.Capacity,
	)
	if err != nil {
		return model.Asset{}, err
	}
	a.Category = model.Category(cat)
	if a.Category == model.CategoryVenue {
		a.Sports = unmarshalStrings(supported)
	} else if sport.Valid && sport.String != "" {
		a.Sports = []string{sport.String}
	}
	a.IncompatibleCategories = unmarshalStrings(incomp)
	a.Tier = tier.String
	a.Bio = bio.String
	a.Level = level.String
	a.Season = season.String
	a.VenueType = venueType.String
	return a, nil
}

// appendIn extends query with an IN clause when values is non-empty.
func appendIn(query string, args []any, column string, values []string) (string, []any) {
	if len(values) == 0 {
		return query, args
	}
	placeholders := strings.Repeat("?, ", len(values))
	query += fmt.Sprintf(" AND %s IN (%s)", column, placeholders[:len(placeholders)-2])
	for _, v := range values {
		args = append(args, v)
	}
	return query, args
}

func marshalStrings(in []string) string {
	if len(in) == 0 {
		return "[]"
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// unmarshalStrings parses a JSON string list defensively: malformed input
// yields an empty list rather than an error.
func unmarshalStrings(in string) []string {
	if in == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(in), &out); err != nil {
		return nil
	}
	return out
}
