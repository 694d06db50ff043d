package domain

import (
	"errors"
	"fmt"
)

// PassionLevel rates how much a user cares about a hobby. It is stored and
// returned to clients as its ordinal.
type PassionLevel int

const (
	PassionLow PassionLevel = iota
	PassionMedium
	PassionHigh
	PassionVeryHigh
)

// ErrInvalidPassionLevel is returned for ordinals outside 0..3 and unknown symbols.
var ErrInvalidPassionLevel = errors.New("invalid passion level")

var passionSymbols = [...]string{
	PassionLow:      "low",
	PassionMedium:   "medium",
	PassionHigh:     "high",
	PassionVeryHigh: "very-high",
}

// Valid reports whether p is one of the four known levels.
func (p PassionLevel) Valid() bool {
	return p >= PassionLow && p <= PassionVeryHigh
}

func (p PassionLevel) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PassionLevel(%d)", int(p))
	}
	return passionSymbols[p]
}

// ParsePassionLevel maps a symbol (low, medium, high, very-high) to its level.
func ParsePassionLevel(symbol string) (PassionLevel, error) {
	for i, s := range passionSymbols {
		if s == symbol {
			return PassionLevel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPassionLevel, symbol)
}

// PassionLevelFromOrdinal validates an ordinal and converts it to a level.
func PassionLevelFromOrdinal(ordinal int) (PassionLevel, error) {
	p := PassionLevel(ordinal)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPassionLevel, ordinal)
	}
	return p, nil
}

// PassionSymbol renders a stored value in its symbolic form. Values that are
// already symbols are returned unchanged; numeric values must be whole
// ordinals in range.
func PassionSymbol(v any) (string, error) {
	switch t := v.(type) {
	case string:
		if _, err := ParsePassionLevel(t); err != nil {
			return "", err
		}
		return t, nil
	case PassionLevel:
		if !t.Valid() {
			return "", fmt.Errorf("%w: %d", ErrInvalidPassionLevel, int(t))
		}
		return t.String(), nil
	case int:
		p, err := PassionLevelFromOrdinal(t)
		if err != nil {
			return "", err
		}
		return p.String(), nil
	case int64:
		return PassionSymbol(int(t))
	case float64:
		if t != float64(int(t)) {
			return "", fmt.Errorf("%w: %v", ErrInvalidPassionLevel, t)
		}
		return PassionSymbol(int(t))
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidPassionLevel, v)
	}
}

// NormalizePassionLevel converts a client supplied value (ordinal or symbol)
// to the stored ordinal.
func NormalizePassionLevel(v any) (PassionLevel, error) {
	if s, ok := v.(string); ok {
		return ParsePassionLevel(s)
	}
	symbol, err := PassionSymbol(v)
	if err != nil {
		return 0, err
	}
	return ParsePassionLevel(symbol)
}
