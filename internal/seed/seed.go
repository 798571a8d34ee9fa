// Package seed loads a demo inventory and brief into a store for local
// development and smoke testing.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/kibisports/matchdesk/internal/adapters/repository"
	"github.com/kibisports/matchdesk/internal/domain/model"
)

// DemoUserID is the brand user owning the seeded brief.
const DemoUserID int64 = 1

// Summary reports what Run inserted.
type Summary struct {
	Athletes int
	Leagues  int
	Venues   int
	BriefID  int64
}

// Run inserts the demo inventory and a submitted demo brief. It is not
// idempotent; run it against a fresh database.
func Run(ctx context.Context, store repository.Store) (Summary, error) {
	var sum Summary
	for _, group := range [][]model.Asset{demoAthletes(), demoLeagues(), demoVenues()} {
		for i := range group {
			if err := store.CreateAsset(ctx, &group[i]); err != nil {
				return Summary{}, fmt.Errorf("seed asset %q: %w", group[i].Name, err)
			}
			switch group[i].Category {
			case model.CategoryAthlete:
				sum.Athletes++
			case model.CategoryLeague:
				sum.Leagues++
			case model.CategoryVenue:
				sum.Venues++
			}
		}
	}

	now := time.Now().UTC()
	brief := model.Brief{
		BrandUserID:    DemoUserID,
		CampaignName:   "Demo Brand Summer Campaign",
		Objective:      model.ObjectiveAwareness,
		Sports:         []string{"basketball"},
		TargetCities:   []string{"Chicago"},
		BudgetCurrency: "USD",
		Budget:         500000,
		Status:         model.BriefSubmitted,
		SubmittedAt:    &now,
	}
	if err := store.CreateBrief(ctx, &brief); err != nil {
		return Summary{}, fmt.Errorf("seed brief: %w", err)
	}
	sum.BriefID = brief.ID
	return sum, nil
}
