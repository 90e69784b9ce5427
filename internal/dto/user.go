package dto

import (
	"github.com/hospital-ops/ward-staffing-api/internal/models"
)

// UserDTO is the identity returned by signup: the user without the
// password hash.
type UserDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserWithTokenDTO is the identity returned by login, including the
// issued bearer token.
type UserWithTokenDTO struct {
	UserDTO
	Token string `json:"token"`
}

// ToUserDTO converts a user to its public representation.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}

// ToUserWithTokenDTO converts a user and its bearer token to the login
// response representation.
func ToUserWithTokenDTO(user models.User, token string) UserWithTokenDTO {
	return UserWithTokenDTO{
		UserDTO: ToUserDTO(user),
		Token:   token,
	}
}
