// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	userDTO "campuseval_backend/internals/features/users/users/dto"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	User        userDTO.UserResponse `json:"user"`
}
