package tableui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMass(t *testing.T) {
	cases := []struct {
		mass float64
		want string
	}{
		{1.00794, "1.008"},
		{12.0, "12.000"},
		{20.1797, "20.180"},
		{238.02891, "238.029"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMass(tc.mass), "mass %v", tc.mass)
	}
}

func TestNameTier(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Tin", 0},
		{"Potassium", 0}, // 9 runes: boundary is strictly greater-than
		{"Phosphorus", 1}, // 10 runes
		{"Einsteinium", 1}, // 11 runes
		{"Praseodymium", 2}, // 12 runes
		{"Rutherfordium", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, nameTier(tc.name), "name %q", tc.name)
	}
}

func TestFitName(t *testing.T) {
	assert.Equal(t, "Neon", fitName("Neon", 10))
	assert.Equal(t, "Praseodymi", fitName("Praseodymium", 10))
	assert.Equal(t, "", fitName("Gold", 0))
}

func TestDisplayNameTiersAreDistinct(t *testing.T) {
	// Tier 0 fits untouched
	assert.Equal(t, "Neon", displayName("Neon", 10))
	assert.Equal(t, "Phosphorus", displayName("Phosphorus", 10))
	// Tier 1 fills the cell edge to edge, plain clip
	assert.Equal(t, "Einsteiniu", displayName("Einsteinium", 10))
	// Tier 2 is truncated with a visible ellipsis
	assert.Equal(t, "Praseodym…", displayName("Praseodymium", 10))
	assert.Equal(t, "Rutherfor…", displayName("Rutherfordium", 10))
	// A wide enough cell shows any tier whole
	assert.Equal(t, "Praseodymium", displayName("Praseodymium", 14))
}
