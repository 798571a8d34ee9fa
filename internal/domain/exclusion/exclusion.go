// Package exclusion drops assets whose declared incompatible categories
// collide with a brief's exclusion list. The filter is strict at every
// relaxation level.
package exclusion

import (
	"strings"

	"github.com/kibisports/matchdesk/internal/domain/model"
)

// Excluded reports whether the asset's incompatible categories intersect the
// brief's excluded categories, case-insensitively. Either list being empty
// means no exclusion.
func Excluded(asset model.Asset, excludedCategories []string) bool {
	if len(excludedCategories) == 0 || len(asset.IncompatibleCategories) == 0 {
		return false
	}
	excluded := make(map[string]struct{}, len(excludedCategories))
	for _, c := range excludedCategories {
		excluded[strings.ToUpper(c)] = struct{}{}
	}
	for _, c := range asset.IncompatibleCategories {
		if _, ok := excluded[strings.ToUpper(c)]; ok {
			return true
		}
	}
	return false
}

// Filter returns the assets that survive the brief's exclusion list.
func Filter(assets []model.Asset, excludedCategories []string) []model.Asset {
	if len(excludedCategories) == 0 {
		return assets
	}
	kept := make([]model.Asset, 0, len(assets))
	for _, a := range assets {
		if !Excluded(a, excludedCategories) {
			kept = append(kept, a)
		}
	}
	return kept
}
