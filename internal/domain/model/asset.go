package model

// Category identifies one of the three matchable asset kinds.
type Category string

const (
	CategoryAthlete Category = "athlete"
	CategoryLeague  Category = "league"
	CategoryVenue   Category = "venue"
)

// AllCategories returns the matchable categories in canonical order.
func AllCategories() []Category {
	return []Category{CategoryAthlete, CategoryLeague, CategoryVenue}
}

// Valid reports whether c names a known asset category.
func (c Category) Valid() bool {
	switch c {
	case CategoryAthlete, CategoryLeague, CategoryVenue:
		return true
	}
	return false
}

// AssetStatusActive marks an asset as eligible for matching.
const AssetStatusActive = "active"

// Asset is a matchable inventory item. One flat record covers all three
// categories; Category discriminates, and category-specific fields are zero
// for the others. Athletes and leagues carry exactly one sport; venues carry
// the full set of sports they support.
type Asset struct {
	ID       int64
	Category Category
	Name     string
	Sports   []string
	City     string
	State    string
	Status   string
	Featured bool

	// IncompatibleCategories holds free-form uppercase tags checked against a
	// brief's exclusion list.
	IncompatibleCategories []string

	// Athlete fields.
	Tier            string
	Bio             string
	SocialFollowers int

	// League fields.
	Level  string
	Season string

	// Venue fields.
	VenueType string
	Capacity  int
}

// Active reports whether the asset is eligible for matching.
func (a Asset) Active() bool {
	return a.Status == AssetStatusActive
}
