package http

import "user-hobbies/internal/domain"

// UserResponse is the user projection returned to clients.
type UserResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Hobbies []string `json:"hobbies"`
}

// HobbyResponse is the hobby projection returned to clients. PassionLevel is
// the ordinal.
type HobbyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PassionLevel int    `json:"passionLevel"`
	Year         int64  `json:"year"`
}

func userToResponse(user domain.User) UserResponse {
	hobbies := user.Hobbies
	if hobbies == nil {
		hobbies = []string{}
	}
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Hobbies: hobbies,
	}
}

func hobbyToResponse(hobby domain.Hobby) HobbyResponse {
	return HobbyResponse{
		ID:           hobby.ID,
		Name:         hobby.Name,
		PassionLevel: int(hobby.PassionLevel),
		Year:         hobby.Year,
	}
}

func hobbiesToResponse(hobbies []domain.Hobby) []HobbyResponse {
	resp := make([]HobbyResponse, len(hobbies))
	for i := range hobbies {
		resp[i] = hobbyToResponse(hobbies[i])
	}
	return resp
}
