package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePassionLevel(t *testing.T) {
	tests := []struct {
		symbol string
		want   PassionLevel
	}{
		{symbol: "low", want: PassionLow},
		{symbol: "medium", want: PassionMedium},
		{symbol: "high", want: PassionHigh},
		{symbol: "very-high", want: PassionVeryHigh},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := ParsePassionLevel(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.symbol, got.String())
		})
	}

	_, err := ParsePassionLevel("extreme")
	assert.ErrorIs(t, err, ErrInvalidPassionLevel)
}

func TestPassionLevelRoundTrips(t *testing.T) {
	for ordinal := 0; ordinal <= 3; ordinal++ {
		symbol, err := PassionSymbol(ordinal)
		require.NoError(t, err)
		level, err := ParsePassionLevel(symbol)
		require.NoError(t, err)
		assert.Equal(t, ordinal, int(level))
	}

	for _, symbol := range []string{"low", "medium", "high", "very-high"} {
		level, err := ParsePassionLevel(symbol)
		require.NoError(t, err)
		back, err := PassionSymbol(int(level))
		require.NoError(t, err)
		assert.Equal(t, symbol, back)
	}
}

func TestPassionSymbol(t *testing.T) {
	got, err := PassionSymbol("high")
	require.NoError(t, err)
	assert.Equal(t, "high", got, "symbols pass through unchanged")

	got, err = PassionSymbol(float64(3))
	require.NoError(t, err)
	assert.Equal(t, "very-high", got)

	for _, v := range []any{-1, 4, 1.5, "loud", true, nil} {
		_, err := PassionSymbol(v)
		assert.ErrorIs(t, err, ErrInvalidPassionLevel, "%v", v)
	}
}

func TestNormalizePassionLevel(t *testing.T) {
	level, err := NormalizePassionLevel(float64(1))
	require.NoError(t, err)
	assert.Equal(t, PassionMedium, level)

	level, err = NormalizePassionLevel("very-high")
	require.NoError(t, err)
	assert.Equal(t, PassionVeryHigh, level)

	_, err = NormalizePassionLevel(float64(7))
	assert.ErrorIs(t, err, ErrInvalidPassionLevel)
}

func TestPassionLevelStringOutOfRange(t *testing.T) {
	assert.Equal(t, "PassionLevel(9)", PassionLevel(9).String())
	assert.False(t, PassionLevel(-1).Valid())
}
