package service

import (
	"errors"

	"user-hobbies/internal/repository"
)

var (
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrHobbyNotFound is returned when a hobby id does not resolve.
	ErrHobbyNotFound = errors.New("hobby not found")
	// ErrOwnerNotFound is returned when the user a hobby is filed under does not exist.
	ErrOwnerNotFound = errors.New("invalid user id")
	// ErrUnknownHobby is returned when a user's hobby list names a hobby that does not exist.
	ErrUnknownHobby = errors.New("unknown hobby id")
	// ErrInvalidName is returned for empty user or hobby names.
	ErrInvalidName = errors.New("name is required")
	// ErrInvalidPassionLevel is returned for passion levels outside the known four.
	ErrInvalidPassionLevel = errors.New("invalid passion level")
)

// translate replaces a repository miss with the service level sentinel.
func translate(err, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return err
}
