// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type UserModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName  string    `gorm:"type:varchar(255);not null;column:user_name" json:"user_name"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email" json:"user_email"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"type:varchar(255);not null;column:user_password" json:"-"`

	// admin | enseignant | etudiant (constants.AllRoles)
	UserRole string `gorm:"type:varchar(20);not null;column:user_role" json:"user_role"`

	UserDepartmentID *uuid.UUID `gorm:"type:uuid;column:user_department_id" json:"user_department_id,omitempty"`
	UserFiliereID    *uuid.UUID `gorm:"type:uuid;column:user_filiere_id" json:"user_filiere_id,omitempty"`

	UserStatus string `gorm:"type:varchar(20);not null;default:'active';column:user_status" json:"user_status"`

	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
