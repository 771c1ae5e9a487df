// file: internals/features/evaluations/campagnes/model/campagne_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	matiereModel "campuseval_backend/internals/features/academics/matieres/model"
	questionnaireModel "campuseval_backend/internals/features/evaluations/questionnaires/model"
	userModel "campuseval_backend/internals/features/users/users/model"
)

// Campaign statuses, derived from the date window (see service.DeriveStatut).
const (
	StatutInactive = "INACTIVE"
	StatutActive   = "ACTIVE"
	StatutCloturee = "CLOTUREE"
)

type CampagneModel struct {
	CampagneID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:campagne_id" json:"campagne_id"`
	CampagneTitre       string    `gorm:"type:varchar(255);not null;column:campagne_titre" json:"campagne_titre"`
	CampagneDescription *string   `gorm:"type:text;column:campagne_description" json:"campagne_description,omitempty"`

	// evaluation window; date_fin is strictly after date_debut
	CampagneDateDebut time.Time `gorm:"type:timestamptz;not null;column:campagne_date_debut" json:"campagne_date_debut"`
	CampagneDateFin   time.Time `gorm:"type:timestamptz;not null;column:campagne_date_fin" json:"campagne_date_fin"`

	CampagneStatut string `gorm:"type:varchar(20);not null;default:'INACTIVE';column:campagne_statut" json:"campagne_statut"`

	CampagneQuestionnaireID uuid.UUID                              `gorm:"type:uuid;not null;column:campagne_questionnaire_id" json:"campagne_questionnaire_id"`
	CampagneQuestionnaire   *questionnaireModel.QuestionnaireModel `gorm:"foreignKey:CampagneQuestionnaireID;references:QuestionnaireID" json:"campagne_questionnaire,omitempty"`

	// targets: at least one matiere or one enseignant
	CampagneMatieres    []matiereModel.MatiereModel `gorm:"many2many:campagne_matieres;foreignKey:CampagneID;joinForeignKey:campagne_id;references:MatiereID;joinReferences:matiere_id" json:"campagne_matieres,omitempty"`
	CampagneEnseignants []userModel.UserModel       `gorm:"many2many:campagne_enseignants;foreignKey:CampagneID;joinForeignKey:campagne_id;references:UserID;joinReferences:enseignant_id" json:"campagne_enseignants,omitempty"`

	CampagneCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:campagne_created_at" json:"campagne_created_at"`
	CampagneUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:campagne_updated_at" json:"campagne_updated_at"`
}

func (CampagneModel) TableName() string { return "campagnes" }

// HasMatiere reports whether the matiere is targeted by this campaign.
func (m *CampagneModel) HasMatiere(id uuid.UUID) bool {
	for i := range m.CampagneMatieres {
		if m.CampagneMatieres[i].MatiereID == id {
			return true
		}
	}
	return false
}

// HasEnseignant reports whether the enseignant is targeted by this campaign.
func (m *CampagneModel) HasEnseignant(id uuid.UUID) bool {
	for i := range m.CampagneEnseignants {
		if m.CampagneEnseignants[i].UserID == id {
			return true
		}
	}
	return false
}
