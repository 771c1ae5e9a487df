// file: internals/features/evaluations/reponses/dto/reponse_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   REQUEST
   ========================= */

type ReponseInput struct {
	QuestionID  uuid.UUID `json:"question_id" validate:"required"`
	NoteEtoiles *int      `json:"note_etoiles" validate:"omitempty,min=1,max=5"`
	Commentaire *string   `json:"commentaire"`
}

// SubmitEvaluationRequest is one student's full answer set for one target
// in one campaign. Deliberately carries no requester identity.
type SubmitEvaluationRequest struct {
	CampagneID uuid.UUID `json:"campagne_id" validate:"required"`
	FiliereID  uuid.UUID `json:"filiere_id" validate:"required"`

	// exactly one of the two must be set
	MatiereID    *uuid.UUID `json:"matiere_id"`
	EnseignantID *uuid.UUID `json:"enseignant_id"`

	Reponses []ReponseInput `json:"reponses" validate:"required,min=1,dive"`
}

type ListReponsesQuery struct {
	CampagneID   *uuid.UUID `query:"campagne_id"`
	QuestionID   *uuid.UUID `query:"question_id"`
	FiliereID    *uuid.UUID `query:"filiere_id"`
	MatiereID    *uuid.UUID `query:"matiere_id"`
	EnseignantID *uuid.UUID `query:"enseignant_id"`
	DateMin      *time.Time `query:"date_min"`
	DateMax      *time.Time `query:"date_max"`
}

/* =========================
   RESPONSE
   ========================= */

// SubmitEvaluationResponse acknowledges the batch without leaking row ids.
type SubmitEvaluationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ReponseResponse struct {
	ReponseID    uuid.UUID  `json:"reponse_id"`
	CampagneID   uuid.UUID  `json:"campagne_id"`
	QuestionID   uuid.UUID  `json:"question_id"`
	FiliereID    uuid.UUID  `json:"filiere_id"`
	MatiereID    *uuid.UUID `json:"matiere_id,omitempty"`
	EnseignantID *uuid.UUID `json:"enseignant_id,omitempty"`
	NoteEtoiles  *int       `json:"note_etoiles,omitempty"`
	Commentaire  *string    `json:"commentaire,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
