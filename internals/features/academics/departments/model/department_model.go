// file: internals/features/academics/departments/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type DepartmentModel struct {
	DepartmentID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`
	DepartmentName string    `gorm:"type:varchar(255);not null;uniqueIndex;column:department_name" json:"department_name"`

	DepartmentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:department_created_at" json:"department_created_at"`
	DepartmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:department_updated_at" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string { return "departments" }
