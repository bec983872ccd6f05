// Package listing filters and sorts restaurant listings.
//
// Functions here are pure: they never mutate the given slice and always
// recompute from the full list.
package listing

import (
	"slices"
	"strings"

	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/utils/rfctime"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortByName   SortKey = "name"
	SortByRating SortKey = "rating"
	SortByNewest SortKey = "newest"
)

// CuisineAll matches any cuisine type.
const CuisineAll = "all"

type Query struct {
	// case-insensitive substring of name, description or cuisine type.
	// Empty matches all.
	Search string

	// exact cuisine type. Empty or CuisineAll matches all.
	Cuisine string

	// minimum rating, inclusive. nil matches all.
	MinRating *float64

	// Unknown keys keep the input order.
	Sort SortKey
}

// Apply filters all by query and sorts the result.
func Apply(all []restaurants.Detail, query Query) []restaurants.Detail {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query.Search))

	ret := make([]restaurants.Detail, 0, len(all))
	for _, r := range all {
		if needle != "" &&
			!strings.Contains(fold.String(r.Name), needle) &&
			!strings.Contains(fold.String(r.Description), needle) &&
			!strings.Contains(fold.String(r.CuisineType), needle) {
			continue
		}
		if query.Cuisine != "" && query.Cuisine != CuisineAll && r.CuisineType != query.Cuisine {
			continue
		}
		if query.MinRating != nil && r.Rating < *query.MinRating {
			continue
		}
		ret = append(ret, r)
	}

	switch query.Sort {
	case SortByName:
		col := collate.New(language.Und)
		slices.SortStableFunc(ret, func(a, b restaurants.Detail) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortByRating:
		slices.SortStableFunc(ret, func(a, b restaurants.Detail) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			default:
				return 0
			}
		})
	case SortByNewest:
		slices.SortStableFunc(ret, func(a, b restaurants.Detail) int {
			switch {
			case rfctime.After(a.CreatedAt, b.CreatedAt):
				return -1
			case rfctime.After(b.CreatedAt, a.CreatedAt):
				return 1
			default:
				return 0
			}
		})
	}

	return ret
}

// Cuisines lists distinct non-empty cuisine types in first-seen order.
func Cuisines(all []restaurants.Detail) []string {
	ret := []string{}
	for _, r := range all {
		if r.CuisineType == "" || slices.Contains(ret, r.CuisineType) {
			continue
		}
		ret = append(ret, r.CuisineType)
	}
	return ret
}
