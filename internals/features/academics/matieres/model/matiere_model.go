// file: internals/features/academics/matieres/model/matiere_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "campuseval_backend/internals/features/users/users/model"
)

// MatiereModel is a subject taught inside a filiere; campaigns target it.
type MatiereModel struct {
	MatiereID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:matiere_id" json:"matiere_id"`
	MatiereCode        string    `gorm:"type:varchar(50);not null;uniqueIndex;column:matiere_code" json:"matiere_code"`
	MatiereNom         string    `gorm:"type:varchar(255);not null;column:matiere_nom" json:"matiere_nom"`
	MatiereDescription *string   `gorm:"type:text;column:matiere_description" json:"matiere_description,omitempty"`

	MatiereDepartmentID uuid.UUID  `gorm:"type:uuid;not null;column:matiere_department_id" json:"matiere_department_id"`
	MatiereFiliereID    *uuid.UUID `gorm:"type:uuid;column:matiere_filiere_id" json:"matiere_filiere_id,omitempty"`

	// teaching staff, join table matiere_enseignants
	MatiereEnseignants []userModel.UserModel `gorm:"many2many:matiere_enseignants;foreignKey:MatiereID;joinForeignKey:matiere_id;references:UserID;joinReferences:enseignant_id" json:"matiere_enseignants,omitempty"`

	MatiereCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:matiere_created_at" json:"matiere_created_at"`
	MatiereUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:matiere_updated_at" json:"matiere_updated_at"`
}

func (MatiereModel) TableName() string { return "matieres" }
