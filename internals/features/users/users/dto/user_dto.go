// file: internals/features/users/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campuseval_backend/internals/features/users/users/model"
)

type CreateUserRequest struct {
	Name         string     `json:"name" validate:"required,min=2,max=255"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=8,max=72"`
	Role         string     `json:"role" validate:"required,oneof=admin enseignant etudiant"`
	DepartmentID *uuid.UUID `json:"department_id"`
	FiliereID    *uuid.UUID `json:"filiere_id"`
}

type UpdateUserRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=2,max=255"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Password     *string    `json:"password" validate:"omitempty,min=8,max=72"`
	Role         *string    `json:"role" validate:"omitempty,oneof=admin enseignant etudiant"`
	DepartmentID *uuid.UUID `json:"department_id"`
	FiliereID    *uuid.UUID `json:"filiere_id"`
	Status       *string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

type ListUsersQuery struct {
	Role         *string    `query:"role"`
	DepartmentID *uuid.UUID `query:"department_id"`
	FiliereID    *uuid.UUID `query:"filiere_id"`
	Search       *string    `query:"search"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	FiliereID    *uuid.UUID `json:"filiere_id,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.UserName,
		Email:        u.UserEmail,
		Role:         u.UserRole,
		DepartmentID: u.UserDepartmentID,
		FiliereID:    u.UserFiliereID,
		Status:       u.UserStatus,
		CreatedAt:    u.UserCreatedAt,
	}
}

func ToUserResponses(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToUserResponse(&rows[i]))
	}
	return out
}
