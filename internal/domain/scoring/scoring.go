// Package scoring computes match scores for assets against a brief. The
// engine is a pure function of its inputs and the relaxation state; it does
// no I/O and never fails on malformed assets.
package scoring

import (
	"math"
	"strings"

	"github.com/kibisports/matchdesk/internal/domain/model"
	"github.com/kibisports/matchdesk/internal/domain/relax"
)

// Sub-score constants.
const (
	clusterSportScore    = 0.6 // sport matched only through the cluster table
	noGeoFilterScore     = 0.5 // brief has no geographic constraint
	stateMatchScore      = 0.7 // state pass (city relaxed)
	nationalPassScore    = 0.4 // city and state both relaxed
	relaxedObjectiveMult = 0.8
	neutralAffinity      = 0.5
	maxScore             = 100
)

// Weights holds the factor weights and relaxation penalties. Weights are
// expected to sum to 1.0 so the raw score stays in [0,1] before scaling.
type Weights struct {
	Sport     float64
	Geo       float64
	Objective float64
	Featured  float64

	CityPenalty      float64
	StatePenalty     float64
	ClusterPenalty   float64
	ObjectivePenalty float64
}

// DefaultWeights returns the production weight and penalty set.
func DefaultWeights() Weights {
	return Weights{
		Sport:            0.40,
		Geo:              0.30,
		Objective:        0.20,
		Featured:         0.10,
		CityPenalty:      0.05,
		StatePenalty:     0.10,
		ClusterPenalty:   0.08,
		ObjectivePenalty: 0.05,
	}
}

// Breakdown records the sub-scores behind a final score. JSON field names
// match the persisted score_breakdown shape consumed by reporting.
type Breakdown struct {
	Sport     float64 `json:"sportScore"`
	Geo       float64 `json:"geoScore"`
	Objective float64 `json:"objectiveScore"`
	Featured  float64 `json:"featuredScore"`
	Penalty   float64 `json:"penalty"`
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWeights overrides the default weights and penalties.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithClusters overrides the sport adjacency table. Keys and peers must be
// lowercase.
func WithClusters(clusters map[string][]string) Option {
	return func(e *Engine) {
		if clusters != nil {
			e.clusters = clusters
		}
	}
}

// WithAffinity overrides the objective x category affinity table.
func WithAffinity(affinity map[model.Objective]map[model.Category]float64) Option {
	return func(e *Engine) {
		if affinity != nil {
			e.affinity = affinity
		}
	}
}

// Engine scores assets against briefs.
type Engine struct {
	weights  Weights
	clusters map[string][]string
	affinity map[model.Objective]map[model.Category]float64
}

// New creates an Engine with default weights, clusters, and affinities.
func New(opts ...Option) *Engine {
	e := &Engine{
		weights:  DefaultWeights(),
		clusters: DefaultClusters(),
		affinity: defaultAffinity(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Weights returns the engine's active weight set.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Score computes the match score for one asset, in [0,100] rounded to two
// decimals, together with its breakdown. A zero score means the asset should
// not appear in ranked results.
func (e *Engine) Score(asset model.Asset, brief model.Brief, state relax.State) (float64, Breakdown) {
	bd := Breakdown{
		Sport:     e.sportScore(asset, brief, state),
		Geo:       geoScore(asset, brief, state),
		Objective: e.objectiveScore(asset.Category, brief.Objective, state),
	}
	if asset.Featured {
		bd.Featured = 1.0
	}

	raw := e.weights.Sport*bd.Sport +
		e.weights.Geo*bd.Geo +
		e.weights.Objective*bd.Objective +
		e.weights.Featured*bd.Featured

	if state.City {
		bd.Penalty += e.weights.CityPenalty
	}
	if state.State {
		bd.Penalty += e.weights.StatePenalty
	}
	if state.SportCluster {
		bd.Penalty += e.weights.ClusterPenalty
	}
	if state.Objective {
		bd.Penalty += e.weights.ObjectivePenalty
	}

	v := raw - bd.Penalty
	if v < 0 {
		v = 0
	}
	score := math.Round(v*maxScore*100) / 100
	return score, bd
}

func (e *Engine) sportScore(asset model.Asset, brief model.Brief, state relax.State) float64 {
	briefSports := lowerAll(brief.Sports)
	for _, s := range asset.Sports {
		if contains(briefSports, strings.ToLower(s)) {
			return 1.0
		}
	}
	if !state.SportCluster {
		return 0.0
	}
	for _, s := range asset.Sports {
		ls := strings.ToLower(s)
		// Adjacency holds in either direction: the asset's peers cover a
		// brief sport, or a brief sport's peers cover the asset.
		for _, peer := range e.clusters[ls] {
			if contains(briefSports, strings.ToLower(peer)) {
				return clusterSportScore
			}
		}
		for _, b := range briefSports {
			if contains(lowerAll(e.clusters[b]), ls) {
				return clusterSportScore
			}
		}
	}
	return 0.0
}

func geoScore(asset model.Asset, brief model.Brief, state relax.State) float64 {
	city := strings.ToLower(asset.City)
	st := strings.ToLower(asset.State)
	cities := lowerAll(brief.TargetCities)
	states := lowerAll(brief.TargetStates)

	if !state.City {
		if len(cities) == 0 && len(states) == 0 {
			return noGeoFilterScore
		}
		if contains(cities, city) {
			return 1.0
		}
		return 0.0
	}

	if !state.State {
		if len(states) == 0 {
			return noGeoFilterScore
		}
		if contains(states, st) {
			return stateMatchScore
		}
		return 0.0
	}

	// City and state both relaxed: a national pass where everything clears
	// at a low score.
	return nationalPassScore
}

func (e *Engine) objectiveScore(cat model.Category, objective model.Objective, state relax.State) float64 {
	base := neutralAffinity
	if row, ok := e.affinity[model.Objective(strings.ToUpper(string(objective)))]; ok {
		if v, ok := row[cat]; ok {
			base = v
		}
	}
	if state.Objective {
		return base * relaxedObjectiveMult
	}
	return base
}

// defaultAffinity maps objective x asset category to a fit value in [0,1].
func defaultAffinity() map[model.Objective]map[model.Category]float64 {
	return map[model.Objective]map[model.Category]float64{
		model.ObjectiveAwareness: {
			model.CategoryAthlete: 1.0, model.CategoryLeague: 0.8, model.CategoryVenue: 0.6,
		},
		model.ObjectiveActivation: {
			model.CategoryAthlete: 0.7, model.CategoryLeague: 1.0, model.CategoryVenue: 1.0,
		},
		model.ObjectiveCommunity: {
			model.CategoryAthlete: 0.8, model.CategoryLeague: 1.0, model.CategoryVenue: 0.9,
		},
		model.ObjectiveSales: {
			model.CategoryAthlete: 0.9, model.CategoryLeague: 0.6, model.CategoryVenue: 0.5,
		},
		model.ObjectiveRecruitment: {
			model.CategoryAthlete: 1.0, model.CategoryLeague: 0.7, model.CategoryVenue: 0.4,
		},
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
