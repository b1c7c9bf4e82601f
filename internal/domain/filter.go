package domain

import "strings"

// Range is a numeric range with optional bounds (nil means unbounded on that side)
type Range struct {
	Min *float64
	Max *float64
}

// IsUnbounded returns true if the range has no bounds at all
func (r *Range) IsUnbounded() bool {
	return r == nil || (r.Min == nil && r.Max == nil)
}

// Contains returns true if v lies within the range (bounds inclusive)
func (r *Range) Contains(v float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// TourFilter holds the catalog filter criteria.
// The zero value has no active criteria and matches every tour.
type TourFilter struct {
	Category      *string     // exact, case-sensitive
	DurationRange *Range      // days
	PriceRange    *Range      // catalog currency
	MaxGroupSize  *int        // tours with maxGroupSize <= value
	Difficulty    *Difficulty // exact
	MinRating     *float64    // unrated tours never match
	SearchTerm    string      // case-insensitive substring of name or description
}

// HasCategory returns true if the category criterion is active
func (f TourFilter) HasCategory() bool {
	return f.Category != nil && *f.Category != ""
}

// HasDurationRange returns true if the duration criterion is active
func (f TourFilter) HasDurationRange() bool {
	return !f.DurationRange.IsUnbounded()
}

// HasPriceRange returns true if the price criterion is active
func (f TourFilter) HasPriceRange() bool {
	return !f.PriceRange.IsUnbounded()
}

// HasMaxGroupSize returns true if the group size criterion is active
func (f TourFilter) HasMaxGroupSize() bool {
	return f.MaxGroupSize != nil
}

// HasDifficulty returns true if the difficulty criterion is active
func (f TourFilter) HasDifficulty() bool {
	return f.Difficulty != nil && *f.Difficulty != ""
}

// HasMinRating returns true if the rating criterion is active
func (f TourFilter) HasMinRating() bool {
	return f.MinRating != nil
}

// HasSearchTerm returns true if the search term is not empty or whitespace-only
func (f TourFilter) HasSearchTerm() bool {
	return strings.TrimSpace(f.SearchTerm) != ""
}

// ActiveCount returns the number of active criteria
func (f TourFilter) ActiveCount() int {
	count := 0
	for _, active := range []bool{
		f.HasCategory(),
		f.HasDurationRange(),
		f.HasPriceRange(),
		f.HasMaxGroupSize(),
		f.HasDifficulty(),
		f.HasMinRating(),
		f.HasSearchTerm(),
	} {
		if active {
			count++
		}
	}
	return count
}

// IsEmpty returns true if no criterion is active
func (f TourFilter) IsEmpty() bool {
	return f.ActiveCount() == 0
}
