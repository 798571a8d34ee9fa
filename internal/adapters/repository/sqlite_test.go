package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/kibisports/matchdesk/internal/adapters/repository"
	"github.com/kibisports/matchdesk/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func openTestDB(t *testing.T) *repository.SQLiteStore {
	t.Helper()
	store, err := repository.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_BriefRoundTrip(t *testing.T) {
	Convey("Given a fresh database", t, func() {
		ctx := context.Background()
		store := openTestDB(t)

		Convey("When a fully populated brief is created", func() {
			submitted := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
			b := model.Brief{
				BrandUserID:        3,
				CampaignName:       "monsoon cricket",
				Objective:          model.ObjectiveCommunity,
				Sports:             []string{"cricket"},
				TargetCities:       []string{"Mumbai", "Pune"},
				TargetStates:       []string{"Maharashtra"},
				ExcludedCategories: []string{"ALCOHOL", "TOBACCO"},
				Categories:         []model.Category{model.CategoryAthlete, model.CategoryVenue},
				Budget:             250000,
				BudgetCurrency:     "INR",
				Status:             model.BriefSubmitted,
				SubmittedAt:        &submitted,
			}
			So(store.CreateBrief(ctx, &b), ShouldBeNil)
			So(b.ID, ShouldBeGreaterThan, 0)

			Convey("Then reading it back preserves every field", func() {
				got, err := store.GetBrief(ctx, b.ID)
				So(err, ShouldBeNil)
				So(got.CampaignName, ShouldEqual, "monsoon cricket")
				So(got.Objective, ShouldEqual, model.ObjectiveCommunity)
				So(got.Sports, ShouldResemble, []string{"cricket"})
				So(got.TargetCities, ShouldResemble, []string{"Mumbai", "Pune"})
				So(got.TargetStates, ShouldResemble, []string{"Maharashtra"})
				So(got.ExcludedCategories, ShouldResemble, []string{"ALCOHOL", "TOBACCO"})
				So(got.Categories, ShouldResemble, []model.Category{model.CategoryAthlete, model.CategoryVenue})
				So(got.Budget, ShouldEqual, 250000)
				So(got.Status, ShouldEqual, model.BriefSubmitted)
				So(got.SubmittedAt, ShouldNotBeNil)
				So(got.SubmittedAt.Equal(submitted), ShouldBeTrue)
			})
		})

		Convey("When an unknown brief is requested", func() {
			_, err := store.GetBrief(ctx, 9999)
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestSQLiteStore_AssetFiltering(t *testing.T) {
	Convey("Given a database with seeded assets", t, func() {
		ctx := context.Background()
		store := openTestDB(t)

		seed := []model.Asset{
			{Category: model.CategoryAthlete, Name: "striker", Sports: []string{"Soccer"}, City: "Mumbai", State: "Maharashtra", Featured: true, Tier: "PRO"},
			{Category: model.CategoryAthlete, Name: "bowler", Sports: []string{"cricket"}, City: "Pune", State: "Maharashtra"},
			{Category: model.CategoryAthlete, Name: "retired", Sports: []string{"cricket"}, City: "Mumbai", State: "Maharashtra", Status: "inactive"},
			{Category: model.CategoryVenue, Name: "dome", Sports: []string{"basketball", "volleyball"}, City: "Mumbai", State: "Maharashtra", VenueType: "arena", Capacity: 12000},
		}
		for i := range seed {
			So(store.CreateAsset(ctx, &seed[i]), ShouldBeNil)
		}

		Convey("Sport matching is case-insensitive via the collation", func() {
			got, err := store.FindActiveAssets(ctx, model.CategoryAthlete, repository.AssetFilter{Sports: []string{"soccer"}})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Name, ShouldEqual, "striker")
			So(got[0].Featured, ShouldBeTrue)
			So(got[0].Tier, ShouldEqual, "PRO")
		})

		Convey("City matching is case-insensitive via the collation", func() {
			got, err := store.FindActiveAssets(ctx, model.CategoryAthlete, repository.AssetFilter{Cities: []string{"MUMBAI"}})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Name, ShouldEqual, "striker")
		})

		Convey("Inactive assets are excluded", func() {
			got, err := store.FindActiveAssets(ctx, model.CategoryAthlete, repository.AssetFilter{})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 2)
		})

		Convey("Venues round-trip their supported sports list", func() {
			got, err := store.FindActiveAssets(ctx, model.CategoryVenue, repository.AssetFilter{})
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Sports, ShouldResemble, []string{"basketball", "volleyball"})
			So(got[0].VenueType, ShouldEqual, "arena")
			So(got[0].Capacity, ShouldEqual, 12000)
		})
	})
}

func TestSQLiteStore_Runs(t *testing.T) {
	Convey("Given a database with a brief and an asset", t, func() {
		ctx := context.Background()
		store := openTestDB(t)

		b := model.Brief{BrandUserID: 1, Sports: []string{"cricket"}, Status: model.BriefSubmitted}
		So(store.CreateBrief(ctx, &b), ShouldBeNil)
		a := model.Asset{Category: model.CategoryAthlete, Name: "opener", Sports: []string{"cricket"}, City: "Mumbai"}
		So(store.CreateAsset(ctx, &a), ShouldBeNil)

		Convey("When no run exists yet", func() {
			_, _, err := store.LatestRun(ctx, b.ID)
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("When a run is saved with result rows", func() {
			id, err := store.SaveRun(ctx, repository.MatchRun{
				BriefID:         b.ID,
				ParamsJSON:      `{"sports":["cricket"]}`,
				RelaxationsJSON: `{"relax_city":true}`,
				TotalCandidates: 1,
			}, []repository.MatchResult{
				{AssetCategory: model.CategoryAthlete, AssetID: a.ID, Score: 76, Rank: 1, BreakdownJSON: `{"penalty":0.05}`},
			})
			So(err, ShouldBeNil)
			So(id, ShouldNotBeEmpty)

			Convey("Then LatestRun returns the run and its rows", func() {
				run, rows, lerr := store.LatestRun(ctx, b.ID)
				So(lerr, ShouldBeNil)
				So(run.ID, ShouldEqual, id)
				So(run.RelaxationsJSON, ShouldEqual, `{"relax_city":true}`)
				So(run.TotalCandidates, ShouldEqual, 1)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].AssetID, ShouldEqual, a.ID)
				So(rows[0].Score, ShouldEqual, 76)
				So(rows[0].BreakdownJSON, ShouldEqual, `{"penalty":0.05}`)
			})
		})

		Convey("When two runs are saved in sequence", func() {
			ranAt := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
			_, err := store.SaveRun(ctx, repository.MatchRun{BriefID: b.ID, RelaxationsJSON: `{}`, RanAt: ranAt}, nil)
			So(err, ShouldBeNil)
			second, err := store.SaveRun(ctx, repository.MatchRun{BriefID: b.ID, RelaxationsJSON: `{}`, RanAt: ranAt.Add(time.Minute)}, nil)
			So(err, ShouldBeNil)

			Convey("Then the newest run is the latest", func() {
				run, _, lerr := store.LatestRun(ctx, b.ID)
				So(lerr, ShouldBeNil)
				So(run.ID, ShouldEqual, second)
			})
		})

	})

	Convey("Given a database file that is closed and reopened", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "persist.db")

		first, err := repository.Open(path)
		So(err, ShouldBeNil)
		b := model.Brief{BrandUserID: 1, Sports: []string{"cricket"}}
		So(first.CreateBrief(ctx, &b), ShouldBeNil)
		_, err = first.SaveRun(ctx, repository.MatchRun{BriefID: b.ID, RelaxationsJSON: `{}`}, nil)
		So(err, ShouldBeNil)
		So(first.Close(), ShouldBeNil)

		Convey("Then migrations are idempotent and the data survives", func() {
			reopened, err := repository.Open(path)
			So(err, ShouldBeNil)
			defer reopened.Close()
			run, _, err := reopened.LatestRun(ctx, b.ID)
			So(err, ShouldBeNil)
			So(run.BriefID, ShouldEqual, b.ID)
		})
	})
}
