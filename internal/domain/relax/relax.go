// Package relax implements progressive constraint relaxation: an ordered
// ladder of relaxation states and the controller that walks it until a
// matching pass yields results.
package relax

import "context"

// State describes which match constraints are loosened for one pass.
// The zero value is the strict pass.
type State struct {
	City         bool `json:"relax_city,omitempty"`
	State        bool `json:"relax_state,omitempty"`
	SportCluster bool `json:"use_cluster,omitempty"`
	Objective    bool `json:"relax_objective,omitempty"`
}

// Any reports whether any constraint is relaxed.
func (s State) Any() bool {
	return s.City || s.State || s.SportCluster || s.Objective
}

// Levels returns the canonical relaxation ladder, strictly increasing in
// looseness. Level 0 is fully strict; the last level is terminal.
func Levels() []State {
	return []State{
		{},
		{City: true},
		{City: true, State: true},
		{City: true, State: true, SportCluster: true},
		{City: true, State: true, SportCluster: true, Objective: true},
	}
}

// defaultMinResults is the survivor threshold below which the controller
// escalates to the next level.
const defaultMinResults = 1

// FetchFunc runs one fetch-and-score pass under the given relaxation state
// and returns how many assets survived with a positive score, summed across
// all categories.
type FetchFunc func(ctx context.Context, state State) (survivors int, err error)

// Outcome reports which level the controller settled on.
type Outcome struct {
	Level     int
	State     State
	Survivors int
}

// Relaxed reports whether the settled level loosened any constraint.
func (o Outcome) Relaxed() bool {
	return o.Level > 0
}

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithLevels overrides the relaxation ladder.
func WithLevels(levels []State) Option {
	return func(c *Controller) {
		if len(levels) > 0 {
			c.levels = levels
		}
	}
}

// WithMinResults sets the survivor threshold that stops escalation.
func WithMinResults(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.minResults = n
		}
	}
}

// Controller walks the relaxation ladder strictly in order. It holds no
// mutable state between runs and is safe for concurrent use.
type Controller struct {
	levels     []State
	minResults int
}

// NewController creates a controller over the canonical ladder.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		levels:     Levels(),
		minResults: defaultMinResults,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run invokes fetch once per level, in increasing order, stopping at the
// first level whose survivor count meets the threshold. The terminal level's
// outcome is returned unconditionally, even when empty. A fetch error aborts
// the walk.
func (c *Controller) Run(ctx context.Context, fetch FetchFunc) (Outcome, error) {
	var out Outcome
	for i, state := range c.levels {
		survivors, err := fetch(ctx, state)
		if err != nil {
			return Outcome{}, err
		}
		out = Outcome{Level: i, State: state, Survivors: survivors}
		if survivors >= c.minResults {
			return out, nil
		}
	}
	return out, nil
}
