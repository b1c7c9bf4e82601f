package domain

// Difficulties lists the difficulty levels from easiest to hardest
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyModerate,
	DifficultyChallenging,
	DifficultyDifficult,
}

// Sort orders for the catalog listing
const (
	SortPriceAsc    = "price_asc"
	SortPriceDesc   = "price_desc"
	SortDurationAsc = "duration_asc"
	SortRatingDesc  = "rating_desc"
)

// Business validation constants
const (
	MinRating          = 0.0
	MaxRating          = 5.0
	MaxLeadNameLength  = 200
	MaxLeadEmailLength = 254
	MaxLeadPhoneLength = 32
	MaxLeadMessage     = 2000
	MaxLeadGroupSize   = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
