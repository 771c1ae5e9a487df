// file: internals/features/evaluations/reponses/model/reponse_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReponseModel is one anonymous answer to one question within one campaign
// submission. The struct (and the table) has no column for the submitting
// user: anonymity is structural, not an unused field.
//
// Rows are written once by the submission pipeline and only removed by the
// campagne cascade.
type ReponseModel struct {
	ReponseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:reponse_id" json:"reponse_id"`

	ReponseCampagneID uuid.UUID `gorm:"type:uuid;not null;column:reponse_campagne_id" json:"reponse_campagne_id"`
	ReponseQuestionID uuid.UUID `gorm:"type:uuid;not null;column:reponse_question_id" json:"reponse_question_id"`

	// the submitting student's filiere; required for aggregation scoping
	ReponseFiliereID uuid.UUID `gorm:"type:uuid;not null;column:reponse_filiere_id" json:"reponse_filiere_id"`

	// exactly one of matiere/enseignant is set, mirroring the targeting choice
	ReponseMatiereID    *uuid.UUID `gorm:"type:uuid;column:reponse_matiere_id" json:"reponse_matiere_id,omitempty"`
	ReponseEnseignantID *uuid.UUID `gorm:"type:uuid;column:reponse_enseignant_id" json:"reponse_enseignant_id,omitempty"`

	ReponseNoteEtoiles *int    `gorm:"column:reponse_note_etoiles" json:"reponse_note_etoiles,omitempty"`
	ReponseCommentaire *string `gorm:"type:text;column:reponse_commentaire" json:"reponse_commentaire,omitempty"`

	ReponseCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:reponse_created_at" json:"reponse_created_at"`
}

func (ReponseModel) TableName() string { return "reponses" }
