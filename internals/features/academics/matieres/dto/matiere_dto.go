// file: internals/features/academics/matieres/dto/matiere_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campuseval_backend/internals/features/academics/matieres/model"
)

type CreateMatiereRequest struct {
	Code          string      `json:"code" validate:"required,min=2,max=50"`
	Nom           string      `json:"nom" validate:"required,min=2,max=255"`
	Description   *string     `json:"description" validate:"omitempty,max=2000"`
	DepartmentID  uuid.UUID   `json:"department_id" validate:"required"`
	FiliereID     *uuid.UUID  `json:"filiere_id"`
	EnseignantIDs []uuid.UUID `json:"enseignant_ids" validate:"omitempty,dive,required"`
}

type UpdateMatiereRequest struct {
	Code          *string      `json:"code" validate:"omitempty,min=2,max=50"`
	Nom           *string      `json:"nom" validate:"omitempty,min=2,max=255"`
	Description   *string      `json:"description" validate:"omitempty,max=2000"`
	FiliereID     *uuid.UUID   `json:"filiere_id"`
	EnseignantIDs *[]uuid.UUID `json:"enseignant_ids" validate:"omitempty,dive,required"`
}

type EnseignantLite struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

type MatiereResponse struct {
	MatiereID    uuid.UUID        `json:"matiere_id"`
	Code         string           `json:"code"`
	Nom          string           `json:"nom"`
	Description  *string          `json:"description,omitempty"`
	DepartmentID uuid.UUID        `json:"department_id"`
	FiliereID    *uuid.UUID       `json:"filiere_id,omitempty"`
	Enseignants  []EnseignantLite `json:"enseignants"`
	CreatedAt    time.Time        `json:"created_at"`
}

func ToMatiereResponse(m *model.MatiereModel) MatiereResponse {
	enseignants := make([]EnseignantLite, 0, len(m.MatiereEnseignants))
	for i := range m.MatiereEnseignants {
		e := &m.MatiereEnseignants[i]
		enseignants = append(enseignants, EnseignantLite{
			UserID: e.UserID,
			Name:   e.UserName,
			Email:  e.UserEmail,
		})
	}
	return MatiereResponse{
		MatiereID:    m.MatiereID,
		Code:         m.MatiereCode,
		Nom:          m.MatiereNom,
		Description:  m.MatiereDescription,
		DepartmentID: m.MatiereDepartmentID,
		FiliereID:    m.MatiereFiliereID,
		Enseignants:  enseignants,
		CreatedAt:    m.MatiereCreatedAt,
	}
}

func ToMatiereResponses(rows []model.MatiereModel) []MatiereResponse {
	out := make([]MatiereResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToMatiereResponse(&rows[i]))
	}
	return out
}
