package filter_tours

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantNil      bool
		wantMin      *float64
		wantMax      *float64
		wantWarnings int
	}{
		{name: "empty", raw: "", wantNil: true},
		{name: "whitespace", raw: "   ", wantNil: true},
		{name: "closed range", raw: "8-14", wantMin: f(8), wantMax: f(14)},
		{name: "spaces around bounds", raw: " 0 - 4000 ", wantMin: f(0), wantMax: f(4000)},
		{name: "open upper bound", raw: "15+", wantMin: f(15)},
		{name: "open lower bound", raw: "-4000", wantMax: f(4000)},
		{name: "trailing dash", raw: "5000-", wantMin: f(5000)},
		{name: "exact value", raw: "7", wantMin: f(7), wantMax: f(7)},
		{name: "currency and thousands", raw: "$1,000-$2,500", wantMin: f(1000), wantMax: f(2500)},
		{name: "bad lower bound", raw: "abc-14", wantMax: f(14), wantWarnings: 1},
		{name: "bad upper bound", raw: "8-xyz", wantMin: f(8), wantWarnings: 1},
		{name: "both bounds bad", raw: "a-b", wantNil: true, wantWarnings: 2},
		{name: "bad open range", raw: "many+", wantNil: true, wantWarnings: 1},
		{name: "not a number", raw: "week", wantNil: true, wantWarnings: 1},
		{name: "NaN is rejected", raw: "NaN-10", wantMax: f(10), wantWarnings: 1},
		{name: "inverted range kept", raw: "10-5", wantMin: f(10), wantMax: f(5), wantWarnings: 1},
		// разделитель - первый дефис, отрицательная нижняя граница не поддерживается
		{name: "negative lower bound", raw: "-5-10", wantNil: true, wantWarnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, warnings := ParseRange(FieldDuration, tt.raw)
			assert.Len(t, warnings, tt.wantWarnings)
			for _, w := range warnings {
				assert.Equal(t, FieldDuration, w.Field)
			}

			if tt.wantNil {
				assert.Nil(t, r)
				return
			}
			require.NotNil(t, r)
			assert.Equal(t, tt.wantMin, r.Min)
			assert.Equal(t, tt.wantMax, r.Max)
		})
	}
}

func TestParseCriteria(t *testing.T) {
	criteria, warnings := parseCriteria(&Request{
		Category:   " Adventure ",
		Duration:   "8-14",
		Price:      "4000+",
		GroupSize:  "6",
		Difficulty: "Challenging",
		MinRating:  "4.5",
		Search:     "Trek",
	})

	assert.Empty(t, warnings)
	require.NotNil(t, criteria.Category)
	assert.Equal(t, "Adventure", *criteria.Category)
	assert.Equal(t, f(8), criteria.DurationRange.Min)
	assert.Equal(t, f(4000), criteria.PriceRange.Min)
	assert.Nil(t, criteria.PriceRange.Max)
	require.NotNil(t, criteria.MaxGroupSize)
	assert.Equal(t, 6, *criteria.MaxGroupSize)
	require.NotNil(t, criteria.Difficulty)
	assert.Equal(t, domain.DifficultyChallenging, *criteria.Difficulty)
	assert.Equal(t, f(4.5), criteria.MinRating)
	assert.Equal(t, "Trek", criteria.SearchTerm)
	assert.Equal(t, 7, criteria.ActiveCount())
}

func TestParseCriteria_Empty(t *testing.T) {
	criteria, warnings := parseCriteria(&Request{})
	assert.Empty(t, warnings)
	assert.True(t, criteria.IsEmpty())
}

func TestParseCriteria_InvalidValuesDegrade(t *testing.T) {
	criteria, warnings := parseCriteria(&Request{
		Duration:   "long",
		Price:      "cheap-3000",
		GroupSize:  "six",
		Difficulty: "Extreme",
		MinRating:  "7",
	})

	assert.Nil(t, criteria.DurationRange)
	require.NotNil(t, criteria.PriceRange)
	assert.Nil(t, criteria.PriceRange.Min)
	assert.Equal(t, f(3000), criteria.PriceRange.Max)
	assert.Nil(t, criteria.MaxGroupSize)
	assert.Nil(t, criteria.MinRating)

	// неизвестная сложность остается активной и дает пустой результат
	require.NotNil(t, criteria.Difficulty)
	assert.Equal(t, domain.Difficulty("Extreme"), *criteria.Difficulty)

	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	assert.ElementsMatch(t, []string{FieldDuration, FieldPrice, FieldGroupSize, FieldDifficulty, FieldMinRating}, fields)
}

func TestParseCriteria_NonPositiveGroupSize(t *testing.T) {
	criteria, warnings := parseCriteria(&Request{GroupSize: "0"})
	assert.Nil(t, criteria.MaxGroupSize)
	require.Len(t, warnings, 1)
	assert.Equal(t, msgMustBePositive, warnings[0].Message)
}

func TestParseCriteria_LongSearchAppliedInFull(t *testing.T) {
	long := strings.Repeat("a", 100) + "zzz"
	criteria, warnings := parseCriteria(&Request{Search: long})
	assert.Empty(t, warnings)
	assert.Equal(t, long, criteria.SearchTerm)

	// тур содержит только префикс строки поиска и не должен попасть в выдачу
	tours := []*domain.Tour{{ID: 1, Name: strings.Repeat("a", 100)}}
	assert.Empty(t, Filter(tours, criteria))
}

func f(v float64) *float64 {
	return &v
}
