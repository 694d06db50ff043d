package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUser(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		keys    []string
		want    bool
	}{
		{
			name:    "complete",
			payload: map[string]any{"name": "Famous", "hobbies": []any{}},
			want:    true,
		},
		{
			name:    "hobby ids are strings",
			payload: map[string]any{"name": "Famous", "hobbies": []any{"a", "b"}},
			want:    true,
		},
		{
			name:    "missing hobbies",
			payload: map[string]any{"name": "Famous"},
			want:    false,
		},
		{
			name:    "name not a string",
			payload: map[string]any{"name": 12.0, "hobbies": []any{}},
			want:    false,
		},
		{
			name:    "hobby id not a string",
			payload: map[string]any{"name": "Famous", "hobbies": []any{"a", 2.0}},
			want:    false,
		},
		{
			name:    "hobbies not an array",
			payload: map[string]any{"name": "Famous", "hobbies": "a"},
			want:    false,
		},
		{
			name:    "subset ignores absent fields",
			payload: map[string]any{"name": "John"},
			keys:    []string{"name"},
			want:    true,
		},
		{
			name:    "unknown keys pass",
			payload: map[string]any{"name": "John", "id": "x"},
			keys:    []string{"name", "id"},
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUser(tt.payload, tt.keys...))
		})
	}
}

func TestValidHobby(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    bool
	}{
		{
			name:    "ordinal passion level",
			payload: map[string]any{"name": "Singing", "passionLevel": 0.0, "year": 2020.0},
			want:    true,
		},
		{
			name:    "symbolic passion level",
			payload: map[string]any{"name": "Singing", "passionLevel": "very-high", "year": 2020.0},
			want:    true,
		},
		{
			name:    "passion level out of range",
			payload: map[string]any{"name": "Singing", "passionLevel": 4.0, "year": 2020.0},
			want:    false,
		},
		{
			name:    "fractional year",
			payload: map[string]any{"name": "Singing", "passionLevel": 1.0, "year": 2020.5},
			want:    false,
		},
		{
			name:    "year beyond safe range",
			payload: map[string]any{"name": "Singing", "passionLevel": 1.0, "year": 1e16},
			want:    false,
		},
		{
			name:    "year as string",
			payload: map[string]any{"name": "Singing", "passionLevel": 1.0, "year": "2020"},
			want:    false,
		},
		{
			name:    "missing name",
			payload: map[string]any{"passionLevel": 1.0, "year": 2020.0},
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidHobby(tt.payload))
		})
	}
}

func TestPatchGuardsCheckPresentKeysOnly(t *testing.T) {
	assert.True(t, ValidUserPatch(map[string]any{}))
	assert.True(t, ValidUserPatch(map[string]any{"name": "Paul"}))
	assert.False(t, ValidUserPatch(map[string]any{"hobbies": []any{1.0}}))

	assert.True(t, ValidHobbyPatch(map[string]any{}))
	assert.True(t, ValidHobbyPatch(map[string]any{"name": "Gaming"}))
	assert.True(t, ValidHobbyPatch(map[string]any{"passionLevel": "high"}))
	assert.False(t, ValidHobbyPatch(map[string]any{"year": 1.25}))
}

func TestIsSafeInteger(t *testing.T) {
	assert.True(t, IsSafeInteger(float64(MaxSafeInteger)))
	assert.True(t, IsSafeInteger(-float64(MaxSafeInteger)))
	assert.True(t, IsSafeInteger(int64(42)))
	assert.False(t, IsSafeInteger(float64(MaxSafeInteger)+2))
	assert.False(t, IsSafeInteger(nil))
}
