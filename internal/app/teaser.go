package service

import (
	"github.com/kibisports/matchdesk/internal/domain/model"
)

// TeaserItem is one allow-listed result entry. Only fields named by the
// category's projection plus score, rank, and asset_type ever appear.
type TeaserItem map[string]any

// TotalMatched reports survivor counts per category, independent of teaser
// truncation.
type TotalMatched struct {
	Athletes int `json:"athletes"`
	Leagues  int `json:"leagues"`
	Venues   int `json:"venues"`
}

// TeaserResponse is the client-safe matchmaking payload.
type TeaserResponse struct {
	MatchRunID   string       `json:"match_run_id"`
	IsRelaxed    bool         `json:"is_relaxed"`
	Athletes     []TeaserItem `json:"athletes"`
	Leagues      []TeaserItem `json:"leagues"`
	Venues       []TeaserItem `json:"venues"`
	TotalMatched TotalMatched `json:"total_matched"`
}

// projectedField maps one output field name to its asset accessor.
type projectedField struct {
	name  string
	value func(model.Asset) any
}

// projection is the declared allow-list for one asset category. Fields not
// listed here are never emitted, whatever the asset record carries.
type projection []projectedField

func firstSport(a model.Asset) any {
	if len(a.Sports) == 0 {
		return ""
	}
	return a.Sports[0]
}

var teaserProjections = map[model.Category]projection{
	model.CategoryAthlete: {
		{"id", func(a model.Asset) any { return a.ID }},
		{"name", func(a model.Asset) any { return a.Name }},
		{"sport", firstSport},
		{"city", func(a model.Asset) any { return a.City }},
		{"state", func(a model.Asset) any { return a.State }},
		{"tier", func(a model.Asset) any { return a.Tier }},
		{"featured_flag", func(a model.Asset) any { return a.Featured }},
	},
	model.CategoryLeague: {
		{"id", func(a model.Asset) any { return a.ID }},
		{"name", func(a model.Asset) any { return a.Name }},
		{"sport", firstSport},
		{"city", func(a model.Asset) any { return a.City }},
		{"state", func(a model.Asset) any { return a.State }},
		{"level", func(a model.Asset) any { return a.Level }},
		{"season", func(a model.Asset) any { return a.Season }},
		{"featured_flag", func(a model.Asset) any { return a.Featured }},
	},
	model.CategoryVenue: {
		{"id", func(a model.Asset) any { return a.ID }},
		{"name", func(a model.Asset) any { return a.Name }},
		{"sports_supported", func(a model.Asset) any { return a.Sports }},
		{"city", func(a model.Asset) any { return a.City }},
		{"state", func(a model.Asset) any { return a.State }},
		{"type", func(a model.Asset) any { return a.VenueType }},
		{"featured_flag", func(a model.Asset) any { return a.Featured }},
	},
}

func (s *Service) buildTeaser(runID string, relaxed bool, results categoryResults, overrides *Limits) *TeaserResponse {
	limit := func(def, override int) int {
		n := def
		if override > 0 {
			n = override
		}
		if n > s.hardCap {
			n = s.hardCap
		}
		return n
	}

	var o Limits
	if overrides != nil {
		o = *overrides
	}

	return &TeaserResponse{
		MatchRunID: runID,
		IsRelaxed:  relaxed,
		Athletes:   tease(results[model.CategoryAthlete], model.CategoryAthlete, limit(s.limits.Athletes, o.Athletes)),
		Leagues:    tease(results[model.CategoryLeague], model.CategoryLeague, limit(s.limits.Leagues, o.Leagues)),
		Venues:     tease(results[model.CategoryVenue], model.CategoryVenue, limit(s.limits.Venues, o.Venues)),
		TotalMatched: TotalMatched{
			Athletes: len(results[model.CategoryAthlete]),
			Leagues:  len(results[model.CategoryLeague]),
			Venues:   len(results[model.CategoryVenue]),
		},
	}
}

func tease(scored []ScoredAsset, cat model.Category, limit int) []TeaserItem {
	if limit > len(scored) {
		limit = len(scored)
	}
	proj := teaserProjections[cat]
	items := make([]TeaserItem, 0, limit)
	for _, r := range scored[:limit] {
		item := TeaserItem{
			"asset_type": string(cat),
			"score":      r.Score,
			"rank":       r.Rank,
		}
		for _, f := range proj {
			item[f.name] = f.value(r.Asset)
		}
		items = append(items, item)
	}
	return items
}
