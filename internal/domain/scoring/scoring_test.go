package scoring_test

import (
	"testing"

	"github.com/kibisports/matchdesk/internal/domain/model"
	"github.com/kibisports/matchdesk/internal/domain/relax"
	scoring "github.com/kibisports/matchdesk/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func cricketBrief() model.Brief {
	return model.Brief{
		Sports:       []string{"cricket"},
		TargetCities: []string{"Mumbai"},
		Objective:    model.ObjectiveAwareness,
	}
}

func mumbaiAthlete() model.Asset {
	return model.Asset{
		Category: model.CategoryAthlete,
		Sports:   []string{"cricket"},
		City:     "Mumbai",
		State:    "Maharashtra",
		Status:   model.AssetStatusActive,
	}
}

func TestEngine_Score(t *testing.T) {
	Convey("Given an engine with default weights", t, func() {
		engine := scoring.New()

		Convey("When scoring an exact sport and city match with no relaxation", func() {
			score, bd := engine.Score(mumbaiAthlete(), cricketBrief(), relax.State{})

			Convey("Then sport and geo sub-scores are full", func() {
				So(bd.Sport, ShouldEqual, 1.0)
				So(bd.Geo, ShouldEqual, 1.0)
				So(bd.Objective, ShouldEqual, 1.0)
				So(bd.Featured, ShouldEqual, 0.0)
				So(bd.Penalty, ShouldEqual, 0.0)
			})

			Convey("And the final score exceeds 80", func() {
				So(score, ShouldEqual, 90.0)
			})
		})

		Convey("When the sport does not match and cluster relaxation is off", func() {
			asset := mumbaiAthlete()
			asset.Sports = []string{"football"}
			score, bd := engine.Score(asset, cricketBrief(), relax.State{})

			Convey("Then the sport sub-score is zero regardless of other factors", func() {
				So(bd.Sport, ShouldEqual, 0.0)
				So(score, ShouldBeLessThanOrEqualTo, 55.0)
			})
		})

		Convey("When the sport matches case-insensitively", func() {
			asset := mumbaiAthlete()
			asset.Sports = []string{"Cricket"}
			_, bd := engine.Score(asset, cricketBrief(), relax.State{})

			So(bd.Sport, ShouldEqual, 1.0)
		})

		Convey("When the brief has no target cities or states", func() {
			brief := cricketBrief()
			brief.TargetCities = nil
			asset := mumbaiAthlete()
			asset.City = "Delhi"
			_, bd := engine.Score(asset, brief, relax.State{})

			Convey("Then the geo sub-score is exactly 0.5", func() {
				So(bd.Geo, ShouldEqual, 0.5)
			})
		})

		Convey("When city relaxation is active and the state matches", func() {
			brief := cricketBrief()
			brief.TargetStates = []string{"Maharashtra"}
			asset := mumbaiAthlete()
			asset.City = "Pune"
			score, bd := engine.Score(asset, brief, relax.State{City: true})

			Convey("Then the geo sub-score is the state pass value with a penalty applied", func() {
				So(bd.Geo, ShouldEqual, 0.7)
				So(bd.Penalty, ShouldEqual, 0.05)
				So(score, ShouldEqual, 76.0)
			})
		})

		Convey("When city and state are both relaxed", func() {
			asset := mumbaiAthlete()
			asset.City = "Kolkata"
			asset.State = "West Bengal"
			_, bd := engine.Score(asset, cricketBrief(), relax.State{City: true, State: true})

			Convey("Then every asset clears geo at the national pass value", func() {
				So(bd.Geo, ShouldEqual, 0.4)
			})
		})

		Convey("When cluster relaxation is active for an adjacent sport", func() {
			asset := mumbaiAthlete()
			asset.Sports = []string{"baseball"}
			state := relax.State{City: true, State: true, SportCluster: true}
			score, bd := engine.Score(asset, cricketBrief(), state)

			Convey("Then the sport sub-score is the cluster value", func() {
				So(bd.Sport, ShouldEqual, 0.6)
			})

			Convey("And the cumulative penalty covers all active dimensions", func() {
				So(bd.Penalty, ShouldAlmostEqual, 0.23, 1e-9)
				So(score, ShouldEqual, 33.0)
			})
		})

		Convey("When cluster relaxation is active for an unrelated sport", func() {
			asset := mumbaiAthlete()
			asset.Sports = []string{"chess"}
			state := relax.State{City: true, State: true, SportCluster: true}
			_, bd := engine.Score(asset, cricketBrief(), state)

			So(bd.Sport, ShouldEqual, 0.0)
		})

		Convey("When objective relaxation is active", func() {
			strictScore, _ := engine.Score(mumbaiAthlete(), cricketBrief(), relax.State{})
			relaxedScore, bd := engine.Score(mumbaiAthlete(), cricketBrief(), relax.State{Objective: true})

			Convey("Then the objective sub-score is dampened and penalized", func() {
				So(bd.Objective, ShouldEqual, 0.8)
				So(bd.Penalty, ShouldEqual, 0.05)
				So(relaxedScore, ShouldBeLessThan, strictScore-5.0+1e-9)
			})
		})

		Convey("When the objective is unrecognized", func() {
			brief := cricketBrief()
			brief.Objective = "VIRALITY"
			_, bd := engine.Score(mumbaiAthlete(), brief, relax.State{})

			Convey("Then the objective sub-score is neutral", func() {
				So(bd.Objective, ShouldEqual, 0.5)
			})
		})

		Convey("When the asset has no parseable sports", func() {
			asset := mumbaiAthlete()
			asset.Sports = nil
			score, bd := engine.Score(asset, cricketBrief(), relax.State{})

			Convey("Then it scores as a non-match instead of failing", func() {
				So(bd.Sport, ShouldEqual, 0.0)
				So(score, ShouldBeGreaterThanOrEqualTo, 0.0)
			})
		})

		Convey("When penalties exceed the raw score", func() {
			asset := mumbaiAthlete()
			asset.Sports = []string{"chess"}
			asset.City = "Kolkata"
			brief := cricketBrief()
			brief.Objective = model.ObjectiveRecruitment
			state := relax.State{City: true, State: true, SportCluster: true, Objective: true}
			engine := scoring.New(scoring.WithWeights(scoring.Weights{
				Sport: 0.40, Geo: 0.30, Objective: 0.20, Featured: 0.10,
				CityPenalty: 0.30, StatePenalty: 0.30, ClusterPenalty: 0.30, ObjectivePenalty: 0.30,
			}))
			score, _ := engine.Score(asset, brief, state)

			Convey("Then the score floors at zero", func() {
				So(score, ShouldEqual, 0.0)
			})
		})

		Convey("When the asset is featured", func() {
			asset := mumbaiAthlete()
			asset.Featured = true
			score, bd := engine.Score(asset, cricketBrief(), relax.State{})

			So(bd.Featured, ShouldEqual, 1.0)
			So(score, ShouldEqual, 100.0)
		})
	})
}

func TestEngine_ScoreRange(t *testing.T) {
	Convey("Given any combination of inputs", t, func() {
		engine := scoring.New()
		assets := []model.Asset{
			{Category: model.CategoryAthlete, Sports: []string{"cricket"}, City: "Mumbai", Featured: true},
			{Category: model.CategoryLeague, Sports: []string{"soccer"}, City: "Pune", State: "Maharashtra"},
			{Category: model.CategoryVenue, Sports: []string{"basketball", "tennis"}, City: "Delhi"},
			{Category: model.CategoryVenue},
		}

		Convey("Then every score stays within [0, 100]", func() {
			for _, state := range relax.Levels() {
				for _, a := range assets {
					score, _ := engine.Score(a, cricketBrief(), state)
					So(score, ShouldBeGreaterThanOrEqualTo, 0.0)
					So(score, ShouldBeLessThanOrEqualTo, 100.0)
				}
			}
		})
	})
}

func TestEngine_CustomWeights(t *testing.T) {
	Convey("Given an engine with injected weights", t, func() {
		engine := scoring.New(scoring.WithWeights(scoring.Weights{
			Sport: 1.0,
		}))

		Convey("When scoring a sport-only match", func() {
			score, _ := engine.Score(mumbaiAthlete(), cricketBrief(), relax.State{})

			Convey("Then only the sport factor contributes", func() {
				So(score, ShouldEqual, 100.0)
			})
		})
	})
}
