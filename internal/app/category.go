package service

import (
	"strings"

	"github.com/kibisports/matchdesk/internal/adapters/repository"
	"github.com/kibisports/matchdesk/internal/domain/model"
	"github.com/kibisports/matchdesk/internal/domain/relax"
)

// categoryStrategy encapsulates how one asset category is fetched: which
// constraints are pushed down to the store, and which matching must happen in
// memory after retrieval.
type categoryStrategy interface {
	Category() model.Category

	// Filter builds the store-level constraints from the brief and the
	// active relaxation state.
	Filter(brief model.Brief, state relax.State) repository.AssetFilter

	// PostFilter applies matching the store cannot express.
	PostFilter(assets []model.Asset, brief model.Brief, state relax.State) []model.Asset
}

func strategyFor(cat model.Category) (categoryStrategy, bool) {
	switch cat {
	case model.CategoryAthlete:
		return singleSportStrategy{cat: model.CategoryAthlete}, true
	case model.CategoryLeague:
		return singleSportStrategy{cat: model.CategoryLeague}, true
	case model.CategoryVenue:
		return venueStrategy{}, true
	}
	return nil, false
}

// geoFilter applies target cities while the city constraint is strict, then
// target states while the state constraint is strict, then nothing.
func geoFilter(f *repository.AssetFilter, brief model.Brief, state relax.State) {
	if !state.City && len(brief.TargetCities) > 0 {
		f.Cities = brief.TargetCities
		return
	}
	if !state.State && len(brief.TargetStates) > 0 {
		f.States = brief.TargetStates
	}
}

// singleSportStrategy covers athletes and leagues, which carry one sport and
// can be filtered entirely at the store.
type singleSportStrategy struct {
	cat model.Category
}

func (s singleSportStrategy) Category() model.Category { return s.cat }

func (s singleSportStrategy) Filter(brief model.Brief, state relax.State) repository.AssetFilter {
	var f repository.AssetFilter
	if !state.SportCluster && len(brief.Sports) > 0 {
		f.Sports = brief.Sports
	}
	geoFilter(&f, brief, state)
	return f
}

func (s singleSportStrategy) PostFilter(assets []model.Asset, _ model.Brief, _ relax.State) []model.Asset {
	return assets
}

// venueStrategy covers venues, which hold a set of supported sports: the geo
// constraints go to the store, sport matching happens in memory.
type venueStrategy struct{}

func (venueStrategy) Category() model.Category { return model.CategoryVenue }

func (venueStrategy) Filter(brief model.Brief, state relax.State) repository.AssetFilter {
	var f repository.AssetFilter
	geoFilter(&f, brief, state)
	return f
}

func (venueStrategy) PostFilter(assets []model.Asset, brief model.Brief, state relax.State) []model.Asset {
	if state.SportCluster || len(brief.Sports) == 0 {
		return assets
	}
	wanted := make(map[string]struct{}, len(brief.Sports))
	for _, s := range brief.Sports {
		wanted[strings.ToLower(s)] = struct{}{}
	}
	kept := make([]model.Asset, 0, len(assets))
	for _, a := range assets {
		for _, s := range a.Sports {
			if _, ok := wanted[strings.ToLower(s)]; ok {
				kept = append(kept, a)
				break
			}
		}
	}
	return kept
}
