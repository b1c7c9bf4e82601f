package domain

// Difficulty represents the physical difficulty level of a tour
type Difficulty string

const (
	DifficultyEasy        Difficulty = "Easy"
	DifficultyModerate    Difficulty = "Moderate"
	DifficultyChallenging Difficulty = "Challenging"
	DifficultyDifficult   Difficulty = "Difficult"
)

// IsValid returns true if the difficulty is one of the known levels
func (d Difficulty) IsValid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// Tour represents a bookable travel package from the catalog.
// Tours are read-only: the catalog snapshot is shared between requests.
type Tour struct {
	ID           int64
	Name         string
	Description  string
	Category     string
	DurationDays int
	Price        float64
	MaxGroupSize int
	Difficulty   *Difficulty // nil = not specified
	Rating       *float64    // nil = not rated yet
	Highlights   []string
}

// HasRating returns true if the tour has a rating
func (t *Tour) HasRating() bool {
	return t.Rating != nil
}

// HasDifficulty returns true if the difficulty level is specified
func (t *Tour) HasDifficulty() bool {
	return t.Difficulty != nil
}

// SuitableForGroup returns true if the tour's maximum group size does not exceed the given bound
func (t *Tour) SuitableForGroup(groupSize int) bool {
	return t.MaxGroupSize <= groupSize
}

// CategorySummary is one entry of the category navigation
type CategorySummary struct {
	Name      string
	TourCount int
	MinPrice  float64
}
