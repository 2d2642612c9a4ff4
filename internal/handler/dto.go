package handler

import (
	"time"

	"github.com/msomdec/user-directory/internal/domain"
)

// UserDTO is the JSON representation of a directory user. The password
// hash is never part of this shape.
type UserDTO struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Gender      string  `json:"gender"`
	Address     *string `json:"address"`
	Country     *string `json:"country"`
	PhoneNumber *string `json:"phone_number"`
	CreatedAt   string  `json:"created_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		UserID:      u.UserID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Gender:      u.Gender,
		Address:     u.Address,
		Country:     u.Country,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}
