// Package guard holds shape checks for untyped request payloads. Guards have
// no side effects; they only report whether the checked fields are present
// and well typed.
package guard

import (
	"encoding/json"
	"math"
	"sort"

	"user-hobbies/internal/domain"
)

// MaxSafeInteger is the largest integer a JSON number carries without loss.
const MaxSafeInteger = 1<<53 - 1

var (
	userFields  = []string{"hobbies", "name"}
	hobbyFields = []string{"year", "name", "passionLevel"}
)

// ValidUser checks keys of payload against the user field rules. With no
// keys every required user field is checked. Unknown keys pass.
func ValidUser(payload map[string]any, keys ...string) bool {
	if len(keys) == 0 {
		keys = userFields
	}
	for _, key := range keys {
		v, ok := payload[key]
		switch key {
		case "name":
			if !ok || !IsString(v) {
				return false
			}
		case "hobbies":
			if !ok || !IsStringSlice(v) {
				return false
			}
		}
	}
	return true
}

// ValidHobby checks keys of payload against the hobby field rules. With no
// keys every required hobby field is checked. Unknown keys pass.
func ValidHobby(payload map[string]any, keys ...string) bool {
	if len(keys) == 0 {
		keys = hobbyFields
	}
	for _, key := range keys {
		v, ok := payload[key]
		switch key {
		case "name":
			if !ok || !IsString(v) {
				return false
			}
		case "passionLevel":
			if !ok || !IsPassionLevel(v) {
				return false
			}
		case "year":
			if !ok || !IsSafeInteger(v) {
				return false
			}
		}
	}
	return true
}

// ValidUserPatch checks only the keys present in payload.
func ValidUserPatch(payload map[string]any) bool {
	if len(payload) == 0 {
		return true
	}
	return ValidUser(payload, Keys(payload)...)
}

// ValidHobbyPatch checks only the keys present in payload.
func ValidHobbyPatch(payload map[string]any) bool {
	if len(payload) == 0 {
		return true
	}
	return ValidHobby(payload, Keys(payload)...)
}

// Keys returns the keys of payload in sorted order.
func Keys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsString reports whether v is a JSON string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsStringSlice reports whether v is an array whose elements are all strings.
func IsStringSlice(v any) bool {
	switch t := v.(type) {
	case []string:
		return true
	case []any:
		for _, item := range t {
			if !IsString(item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsSafeInteger reports whether v is a whole number within ±(2^53-1).
func IsSafeInteger(v any) bool {
	switch t := v.(type) {
	case int:
		return t >= -MaxSafeInteger && t <= MaxSafeInteger
	case int64:
		return t >= -MaxSafeInteger && t <= MaxSafeInteger
	case float64:
		return !math.IsNaN(t) && !math.IsInf(t, 0) && t == math.Trunc(t) && math.Abs(t) <= MaxSafeInteger
	case json.Number:
		n, err := t.Int64()
		return err == nil && IsSafeInteger(n)
	default:
		return false
	}
}

// IsPassionLevel reports whether v is one of the four passion levels, given
// either as a symbol or as its ordinal.
func IsPassionLevel(v any) bool {
	_, err := domain.NormalizePassionLevel(v)
	return err == nil
}
