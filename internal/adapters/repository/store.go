// Package repository defines the inventory and match-run store interface and
// its errors.
package repository

import (
	"context"
	"time"

	"github.com/kibisports/matchdesk/internal/domain/model"
)

// AssetFilter narrows an active-asset query. Empty slices mean no filter on
// that dimension; all matching is case-insensitive. Sport filtering only
// applies at the store level for categories carrying a single sport.
type AssetFilter struct {
	Sports []string
	Cities []string
	States []string
}

// MatchRun is the immutable record of one matchmaking invocation.
type MatchRun struct {
	ID              string
	BriefID         int64
	ParamsJSON      string
	RelaxationsJSON string
	TotalCandidates int
	RanAt           time.Time
}

// MatchResult is one scored, surviving asset within a run. Rank is 1-based
// and dense per asset category.
type MatchResult struct {
	ID            int64
	MatchRunID    string
	AssetCategory model.Category
	AssetID       int64
	Score         float64
	Rank          int
	BreakdownJSON string
}

// Store provides access to briefs, the asset inventory, and match runs.
type Store interface {
	// CreateBrief inserts a brief and assigns its ID.
	CreateBrief(ctx context.Context, b *model.Brief) error

	// GetBrief returns a brief by ID, or ErrNotFound.
	GetBrief(ctx context.Context, id int64) (model.Brief, error)

	// CreateAsset inserts an asset and assigns its ID.
	CreateAsset(ctx context.Context, a *model.Asset) error

	// FindActiveAssets returns active assets of one category matching the
	// filter, unscored and in stable insertion order.
	FindActiveAssets(ctx context.Context, cat model.Category, f AssetFilter) ([]model.Asset, error)

	// SaveRun persists a run and all of its results atomically: readers
	// never observe the run without its results. The run ID is assigned
	// when empty and returned.
	SaveRun(ctx context.Context, run MatchRun, results []MatchResult) (string, error)

	// LatestRun returns the most recent run for a brief with its results,
	// or ErrNotFound when the brief has never been matched.
	LatestRun(ctx context.Context, briefID int64) (MatchRun, []MatchResult, error)
}
