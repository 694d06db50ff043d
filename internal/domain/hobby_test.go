package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHobbyPatch(t *testing.T) {
	assert.True(t, HobbyPatch{}.Empty())

	name := "Gaming"
	level := PassionVeryHigh
	patch := HobbyPatch{Name: &name, PassionLevel: &level}
	assert.False(t, patch.Empty())

	hobby := Hobby{ID: "h1", Name: "Singing", PassionLevel: PassionLow, Year: 2020}
	patch.Apply(&hobby)
	assert.Equal(t, Hobby{ID: "h1", Name: "Gaming", PassionLevel: PassionVeryHigh, Year: 2020}, hobby)
}

func TestUserPatchCopiesHobbies(t *testing.T) {
	hobbies := []string{"a"}
	user := User{ID: "u1", Name: "Famous"}
	UserPatch{Hobbies: &hobbies}.Apply(&user)

	hobbies[0] = "b"
	assert.Equal(t, []string{"a"}, user.Hobbies)
}
