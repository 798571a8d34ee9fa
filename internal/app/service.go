// Package service implements the matchmaking pipeline: candidate retrieval
// under progressive relaxation, exclusion filtering, scoring, persistence of
// the run, and teaser construction.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kibisports/matchdesk/internal/adapters/repository"
	"github.com/kibisports/matchdesk/internal/domain/exclusion"
	"github.com/kibisports/matchdesk/internal/domain/model"
	"github.com/kibisports/matchdesk/internal/domain/relax"
	"github.com/kibisports/matchdesk/internal/domain/scoring"
	"github.com/kibisports/matchdesk/pkg/logger"
	"github.com/kibisports/matchdesk/pkg/metrics"
)

// ScoredAsset is one surviving candidate with its score, breakdown, and
// dense per-category rank.
type ScoredAsset struct {
	Asset     model.Asset
	Score     float64
	Breakdown scoring.Breakdown
	Rank      int
}

// categoryResults holds the ranked survivors per asset category.
type categoryResults map[model.Category][]ScoredAsset

func (r categoryResults) total() int {
	n := 0
	for _, scored := range r {
		n += len(scored)
	}
	return n
}

// Limits carries per-request teaser size overrides. Zero means "use the
// configured default" for that category.
type Limits struct {
	Athletes int
	Leagues  int
	Venues   int
}

// Service implements the matchmaking operations behind the HTTP API.
type Service struct {
	store      repository.Store
	engine     *scoring.Engine
	controller *relax.Controller
	limits     Limits
	hardCap    int
	logger     logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithEngine sets the scoring engine.
func WithEngine(engine *scoring.Engine) Option {
	return func(s *Service) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithController sets the relaxation controller.
func WithController(c *relax.Controller) Option {
	return func(s *Service) {
		if c != nil {
			s.controller = c
		}
	}
}

// WithTeaserLimits sets the default teaser sizes per category.
func WithTeaserLimits(athletes, leagues, venues int) Option {
	return func(s *Service) {
		if athletes > 0 {
			s.limits.Athletes = athletes
		}
		if leagues > 0 {
			s.limits.Leagues = leagues
		}
		if venues > 0 {
			s.limits.Venues = venues
		}
	}
}

// WithTeaserHardCap sets the ceiling request overrides are clamped to.
func WithTeaserHardCap(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.hardCap = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// Default teaser sizing.
const (
	defaultTeaserLimit   = 3
	defaultTeaserHardCap = 100
)

// New constructs a Service around a store with default scoring and
// relaxation configuration.
func New(store repository.Store, opts ...Option) *Service {
	s := &Service{
		store:      store,
		engine:     scoring.New(),
		controller: relax.NewController(),
		limits:     Limits{Athletes: defaultTeaserLimit, Leagues: defaultTeaserLimit, Venues: defaultTeaserLimit},
		hardCap:    defaultTeaserHardCap,
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunMatchmaking executes the full pipeline for one brief on behalf of the
// requesting user and returns the teaser payload. The run and all its
// results are persisted atomically before the response is built.
func (s *Service) RunMatchmaking(ctx context.Context, briefID, userID int64, limits *Limits) (*TeaserResponse, error) {
	start := time.Now()

	brief, err := s.store.GetBrief(ctx, briefID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBriefNotFound
	}
	if err != nil {
		metrics.RecordMatchError()
		return nil, fmt.Errorf("load brief: %w", err)
	}
	if brief.BrandUserID != userID {
		return nil, ErrForbidden
	}
	for _, cat := range brief.Categories {
		if !cat.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, cat)
		}
	}

	var results categoryResults
	outcome, err := s.controller.Run(ctx, func(ctx context.Context, state relax.State) (int, error) {
		r, ferr := s.fetchAndScore(ctx, brief, state)
		if ferr != nil {
			return 0, ferr
		}
		results = r
		return r.total(), nil
	})
	if err != nil {
		metrics.RecordMatchError()
		return nil, err
	}

	runID, err := s.persistRun(ctx, brief, outcome, results)
	if err != nil {
		metrics.RecordMatchError()
		return nil, fmt.Errorf("persist match run: %w", err)
	}

	durationMs := float64(time.Since(start).Milliseconds())
	metrics.RecordMatchRun(durationMs)
	metrics.RecordRelaxationLevel(outcome.Level)
	for _, cat := range model.AllCategories() {
		metrics.UpdateSurvivors(string(cat), len(results[cat]))
	}
	s.logger.Info(ctx, "match run complete",
		logger.Int64("brief_id", briefID),
		logger.String("run_id", runID),
		logger.Int("relaxation_level", outcome.Level),
		logger.Int("survivors", outcome.Survivors),
		logger.Float64("duration_ms", durationMs),
	)

	return s.buildTeaser(runID, outcome.Relaxed(), results, limits), nil
}

// fetchAndScore runs one pass over all requested categories concurrently.
// Categories are independent; the pass fails on the first category error.
func (s *Service) fetchAndScore(ctx context.Context, brief model.Brief, state relax.State) (categoryResults, error) {
	cats := brief.MatchCategories()
	out := make(categoryResults, len(cats))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	for _, cat := range cats {
		strat, ok := strategyFor(cat)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, cat)
		}
		wg.Add(1)
		go func(strat categoryStrategy) {
			defer wg.Done()
			scored, err := s.runCategory(ctx, brief, state, strat)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			out[strat.Category()] = scored
		}(strat)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// runCategory fetches, exclusion-filters, scores, and ranks one category.
func (s *Service) runCategory(ctx context.Context, brief model.Brief, state relax.State, strat categoryStrategy) ([]ScoredAsset, error) {
	qStart := time.Now()
	assets, err := s.store.FindActiveAssets(ctx, strat.Category(), strat.Filter(brief, state))
	metrics.RecordStoreQueryLatency(float64(time.Since(qStart).Milliseconds()))
	if err != nil {
		return nil, fmt.Errorf("fetch %s candidates: %w", strat.Category(), err)
	}

	assets = strat.PostFilter(assets, brief, state)
	assets = exclusion.Filter(assets, brief.ExcludedCategories)
	metrics.RecordCandidatesScored(len(assets))

	scored := make([]ScoredAsset, 0, len(assets))
	for _, a := range assets {
		score, bd := s.engine.Score(a, brief, state)
		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredAsset{Asset: a, Score: score, Breakdown: bd})
	}
	// Ties keep fetch order so reruns on unchanged inventory rank identically.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored, nil
}

// runParams is the parameter snapshot persisted with every run.
type runParams struct {
	Sports             []string         `json:"sports"`
	TargetCities       []string         `json:"targetCities"`
	TargetStates       []string         `json:"targetStates"`
	CampaignObjective  model.Objective  `json:"campaignObjective"`
	AssetCategories    []model.Category `json:"assetCategories"`
	ExcludedCategories []string         `json:"excludedCategories"`
}

func (s *Service) persistRun(ctx context.Context, brief model.Brief, outcome relax.Outcome, results categoryResults) (string, error) {
	paramsJSON, err := json.Marshal(runParams{
		Sports:             brief.Sports,
		TargetCities:       brief.TargetCities,
		TargetStates:       brief.TargetStates,
		CampaignObjective:  brief.Objective,
		AssetCategories:    brief.MatchCategories(),
		ExcludedCategories: brief.ExcludedCategories,
	})
	if err != nil {
		return "", err
	}
	relaxJSON, err := json.Marshal(outcome.State)
	if err != nil {
		return "", err
	}

	run := repository.MatchRun{
		BriefID:         brief.ID,
		ParamsJSON:      string(paramsJSON),
		RelaxationsJSON: string(relaxJSON),
		TotalCandidates: results.total(),
	}

	rows := make([]repository.MatchResult, 0, results.total())
	for _, cat := range model.AllCategories() {
		for _, r := range results[cat] {
			bd, err := json.Marshal(r.Breakdown)
			if err != nil {
				return "", err
			}
			rows = append(rows, repository.MatchResult{
				AssetCategory: cat,
				AssetID:       r.Asset.ID,
				Score:         r.Score,
				Rank:          r.Rank,
				BreakdownJSON: string(bd),
			})
		}
	}

	wStart := time.Now()
	runID, err := s.store.SaveRun(ctx, run, rows)
	metrics.RecordStoreWriteLatency(float64(time.Since(wStart).Milliseconds()))
	return runID, err
}

// ResultRow is one persisted match result as exposed by LatestResults.
type ResultRow struct {
	AssetID   int64           `json:"asset_id"`
	Score     float64         `json:"score"`
	Rank      int             `json:"rank"`
	Breakdown json.RawMessage `json:"score_breakdown"`
}

// LatestResponse groups the most recent run's persisted results per category.
type LatestResponse struct {
	MatchRunID string      `json:"match_run_id"`
	IsRelaxed  bool        `json:"is_relaxed"`
	RanAt      *time.Time  `json:"ran_at,omitempty"`
	Athletes   []ResultRow `json:"athletes"`
	Leagues    []ResultRow `json:"leagues"`
	Venues     []ResultRow `json:"venues"`
}

// LatestResults returns the most recent persisted run for a brief, or an
// empty response when the brief has never been matched.
func (s *Service) LatestResults(ctx context.Context, briefID, userID int64) (*LatestResponse, error) {
	brief, err := s.store.GetBrief(ctx, briefID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBriefNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load brief: %w", err)
	}
	if brief.BrandUserID != userID {
		return nil, ErrForbidden
	}

	run, rows, err := s.store.LatestRun(ctx, briefID)
	if errors.Is(err, repository.ErrNotFound) {
		return &LatestResponse{Athletes: []ResultRow{}, Leagues: []ResultRow{}, Venues: []ResultRow{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load latest run: %w", err)
	}

	var state relax.State
	// Defensive: a malformed snapshot reads as the strict state.
	_ = json.Unmarshal([]byte(run.RelaxationsJSON), &state)

	resp := &LatestResponse{
		MatchRunID: run.ID,
		IsRelaxed:  state.Any(),
		RanAt:      &run.RanAt,
		Athletes:   []ResultRow{},
		Leagues:    []ResultRow{},
		Venues:     []ResultRow{},
	}
	for _, r := range rows {
		row := ResultRow{
			AssetID:   r.AssetID,
			Score:     r.Score,
			Rank:      r.Rank,
			Breakdown: json.RawMessage(r.BreakdownJSON),
		}
		switch r.AssetCategory {
		case model.CategoryAthlete:
			resp.Athletes = append(resp.Athletes, row)
		case model.CategoryLeague:
			resp.Leagues = append(resp.Leagues, row)
		case model.CategoryVenue:
			resp.Venues = append(resp.Venues, row)
		}
	}
	return resp, nil
}

// nopLogger discards everything; it stands in until a real logger is wired.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...logger.Field) {}
func (nopLogger) Info(context.Context, string, ...logger.Field)  {}
func (nopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (nopLogger) Error(context.Context, string, ...logger.Field) {}
func (n nopLogger) Named(string) logger.Logger                   { return n }
