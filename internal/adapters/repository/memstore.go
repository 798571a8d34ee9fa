package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kibisports/matchdesk/internal/domain/model"
)

// MemStore is an in-memory Store used by tests and local development. It
// applies the same case-insensitive filter semantics as the sqlite adapter.
type MemStore struct {
	mu      sync.RWMutex
	briefs  map[int64]model.Brief
	assets  []model.Asset
	runs    []MatchRun
	results map[string][]MatchResult
	nextID  int64
	now     func() time.Time
}

// MemOption applies a configuration option to the MemStore.
type MemOption func(*MemStore)

// WithNow overrides the clock used for run timestamps.
func WithNow(now func() time.Time) MemOption {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(opts ...MemOption) *MemStore {
	s := &MemStore{
		briefs:  make(map[int64]model.Brief),
		results: make(map[string][]MatchResult),
		nextID:  1,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBrief inserts a brief and assigns its ID.
func (s *MemStore) CreateBrief(_ context.Context, b *model.Brief) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		b.ID = s.nextID
		s.nextID++
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.now()
	}
	s.briefs[b.ID] = *b
	return nil
}

// GetBrief returns a brief by ID, or ErrNotFound.
func (s *MemStore) GetBrief(_ context.Context, id int64) (model.Brief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.briefs[id]
	if !ok {
		return model.Brief{}, ErrNotFound
	}
	return b, nil
}

// CreateAsset inserts an asset and assigns its ID.
func (s *MemStore) CreateAsset(_ context.Context, a *model.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == 0 {
		a.ID = s.nextID
		s.nextID++
	}
	if a.Status == "" {
		a.Status = model.AssetStatusActive
	}
	s.assets = append(s.assets, *a)
	return nil
}

// FindActiveAssets returns active assets of one category matching the filter.
func (s *MemStore) FindActiveAssets(_ context.Context, cat model.Category, f AssetFilter) ([]model.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Asset
	for _, a := range s.assets {
		if a.Category != cat || !a.Active() {
			continue
		}
		if len(f.Sports) > 0 && !anyFold(a.Sports, f.Sports) {
			continue
		}
		if len(f.Cities) > 0 && !containsFold(f.Cities, a.City) {
			continue
		}
		if len(f.States) > 0 && !containsFold(f.States, a.State) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// SaveRun persists a run and its results atomically.
func (s *MemStore) SaveRun(_ context.Context, run MatchRun, results []MatchResult) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.RanAt.IsZero() {
		run.RanAt = s.now()
	}
	rs := make([]MatchResult, len(results))
	copy(rs, results)
	for i := range rs {
		rs[i].MatchRunID = run.ID
		rs[i].ID = s.nextID
		s.nextID++
	}
	s.runs = append(s.runs, run)
	s.results[run.ID] = rs
	return run.ID, nil
}

// LatestRun returns the most recent run for a brief with its results.
func (s *MemStore) LatestRun(_ context.Context, briefID int64) (MatchRun, []MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		latest MatchRun
		found  bool
	)
	for _, r := range s.runs {
		if r.BriefID != briefID {
			continue
		}
		if !found || !r.RanAt.Before(latest.RanAt) {
			latest = r
			found = true
		}
	}
	if !found {
		return MatchRun{}, nil, ErrNotFound
	}
	return latest, s.results[latest.ID], nil
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func anyFold(values, allowed []string) bool {
	for _, v := range values {
		if containsFold(allowed, v) {
			return true
		}
	}
	return false
}
