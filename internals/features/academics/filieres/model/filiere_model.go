// file: internals/features/academics/filieres/model/filiere_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// FiliereModel is an academic track inside a department. Students and
// matieres are scoped by it.
type FiliereModel struct {
	FiliereID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:filiere_id" json:"filiere_id"`
	FiliereName         string    `gorm:"type:varchar(255);not null;column:filiere_name" json:"filiere_name"`
	FiliereDepartmentID uuid.UUID `gorm:"type:uuid;not null;column:filiere_department_id" json:"filiere_department_id"`

	FiliereCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:filiere_created_at" json:"filiere_created_at"`
	FiliereUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:filiere_updated_at" json:"filiere_updated_at"`
}

func (FiliereModel) TableName() string { return "filieres" }
