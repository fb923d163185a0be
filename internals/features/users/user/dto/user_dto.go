package dto

import (
	"time"

	"rayk_backend/internals/features/users/user/model"
)

type UserDTO struct {
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserLanguage string    `json:"user_language"`
	UserIsActive bool      `json:"user_is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type UpdateUserRequest struct {
	UserName     *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserLanguage *string `json:"user_language" validate:"omitempty,oneof=ar en"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:       m.UserID.String(),
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserLanguage: m.UserLanguage,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.UserCreatedAt,
	}
}
