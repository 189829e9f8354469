package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYears_Patterns(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{"plain years", "5 years of backend development", 5, true},
		{"plus years", "7+ years building distributed systems", 7, true},
		{"hyphen year", "a 3-year tenure at the company", 3, true},
		{"yrs abbreviation", "12 yrs in data engineering", 12, true},
		{"case insensitive", "5 YEARS EXPERIENCE", 5, true},
		{"no mention", "senior engineer, strong Go background", 0, false},
		{"empty text", "", 0, false},
		{"two digit cap", "20 years of experience", 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractYears(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractYears_MaxAcrossMatches(t *testing.T) {
	// Multiple phrasings: take the maximum, not the first and not a sum.
	got, found := ExtractYears("5 years and 7+ years")
	assert.True(t, found)
	assert.Equal(t, 7.0, got)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, Normalize(0, false, DefaultCap))
	assert.Equal(t, 0.0, Normalize(0, true, DefaultCap))
	assert.Equal(t, 0.0, Normalize(-3, true, DefaultCap))
	assert.Equal(t, 0.5, Normalize(5, true, 10))
	assert.Equal(t, 1.0, Normalize(15, true, 10))
	assert.Equal(t, 1.0, Normalize(10, true, 10))
}

func TestNormalize_ZeroCapUsesDefault(t *testing.T) {
	assert.Equal(t, 0.5, Normalize(5, true, 0))
}

func TestNormalize_Monotonic(t *testing.T) {
	prev := 0.0
	for years := 1.0; years <= 15; years++ {
		score := Normalize(years, true, DefaultCap)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}
