// Package model contains domain models passed between layers.
package model

import "time"

// Objective is a campaign objective declared on a brief.
type Objective string

// Canonical campaign objectives. Unknown values are tolerated by the
// scoring layer and treated neutrally.
const (
	ObjectiveAwareness   Objective = "AWARENESS"
	ObjectiveActivation  Objective = "ACTIVATION"
	ObjectiveCommunity   Objective = "COMMUNITY"
	ObjectiveSales       Objective = "SALES"
	ObjectiveRecruitment Objective = "RECRUITMENT"
)

// BriefStatus tracks the lifecycle of a brief.
type BriefStatus string

const (
	BriefDraft     BriefStatus = "DRAFT"
	BriefSubmitted BriefStatus = "SUBMITTED"
)

// Brief is a brand's sponsorship campaign request. List-valued attributes are
// typed slices; JSON (de)serialization is a store-adapter concern.
type Brief struct {
	ID           int64
	BrandUserID  int64
	CampaignName string
	Objective    Objective

	// Sports must be non-empty once the brief is submitted.
	Sports []string

	// TargetCities and TargetStates may be empty, meaning no geographic filter.
	TargetCities []string
	TargetStates []string

	// ExcludedCategories lists brand-incompatible category tags (uppercase,
	// free-form). Assets declaring an intersecting incompatibility are dropped
	// before scoring.
	ExcludedCategories []string

	// Categories restricts which asset categories are matched. Empty means all.
	Categories []Category

	Budget         float64
	BudgetCurrency string
	Status         BriefStatus
	SubmittedAt    *time.Time
	CreatedAt      time.Time
}

// MatchCategories returns the asset categories this brief matches against,
// defaulting to all three when the brief does not restrict them.
func (b Brief) MatchCategories() []Category {
	if len(b.Categories) == 0 {
		return AllCategories()
	}
	return b.Categories
}
