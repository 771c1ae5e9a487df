// file: internals/features/evaluations/campagnes/dto/campagne_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "campuseval_backend/internals/features/evaluations/campagnes/model"
)

/* =========================
   REQUEST
   ========================= */

type CreateCampagneRequest struct {
	CampagneTitre       string  `json:"campagne_titre" validate:"required,max=255"`
	CampagneDescription *string `json:"campagne_description" validate:"omitempty"`

	CampagneDateDebut time.Time `json:"campagne_date_debut" validate:"required"`
	CampagneDateFin   time.Time `json:"campagne_date_fin" validate:"required"`

	CampagneQuestionnaireID uuid.UUID `json:"campagne_questionnaire_id" validate:"required"`

	MatiereIDs    []uuid.UUID `json:"matiere_ids" validate:"omitempty,dive,required"`
	EnseignantIDs []uuid.UUID `json:"enseignant_ids" validate:"omitempty,dive,required"`
}

// UpdateCampagneRequest: nil = leave untouched. A non-nil empty target list
// clears that side of the targeting (and must leave the other side non-empty).
type UpdateCampagneRequest struct {
	CampagneTitre       *string `json:"campagne_titre" validate:"omitempty,max=255"`
	CampagneDescription *string `json:"campagne_description"`

	CampagneDateDebut *time.Time `json:"campagne_date_debut"`
	CampagneDateFin   *time.Time `json:"campagne_date_fin"`

	CampagneQuestionnaireID *uuid.UUID `json:"campagne_questionnaire_id"`

	MatiereIDs    *[]uuid.UUID `json:"matiere_ids"`
	EnseignantIDs *[]uuid.UUID `json:"enseignant_ids"`

	// explicit override; bypasses date-derived recomputation for this call
	CampagneStatut *string `json:"campagne_statut" validate:"omitempty,oneof=INACTIVE ACTIVE CLOTUREE"`
}

type ListCampagnesQuery struct {
	Statut          *string    `query:"statut"`
	QuestionnaireID *uuid.UUID `query:"questionnaire_id"`
	DateDebut       *time.Time `query:"date_debut"`
	DateFin         *time.Time `query:"date_fin"`
	Search          *string    `query:"search"`
}

/* =========================
   RESPONSE
   ========================= */

type QuestionnaireLite struct {
	QuestionnaireID    uuid.UUID `json:"questionnaire_id"`
	QuestionnaireTitre string    `json:"questionnaire_titre"`
}

type MatiereLite struct {
	MatiereID   uuid.UUID `json:"matiere_id"`
	MatiereCode string    `json:"matiere_code"`
	MatiereNom  string    `json:"matiere_nom"`
}

type EnseignantLite struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
}

type CampagneResponse struct {
	CampagneID          uuid.UUID `json:"campagne_id"`
	CampagneTitre       string    `json:"campagne_titre"`
	CampagneDescription *string   `json:"campagne_description,omitempty"`
	CampagneDateDebut   time.Time `json:"campagne_date_debut"`
	CampagneDateFin     time.Time `json:"campagne_date_fin"`
	CampagneStatut      string    `json:"campagne_statut"`

	CampagneQuestionnaire *QuestionnaireLite `json:"campagne_questionnaire,omitempty"`

	CampagneMatieres    []MatiereLite    `json:"campagne_matieres"`
	CampagneEnseignants []EnseignantLite `json:"campagne_enseignants"`

	CampagneCreatedAt time.Time `json:"campagne_created_at"`
	CampagneUpdatedAt time.Time `json:"campagne_updated_at"`
}

func ToCampagneResponse(m *model.CampagneModel) CampagneResponse {
	resp := CampagneResponse{
		CampagneID:          m.CampagneID,
		CampagneTitre:       m.CampagneTitre,
		CampagneDescription: m.CampagneDescription,
		CampagneDateDebut:   m.CampagneDateDebut,
		CampagneDateFin:     m.CampagneDateFin,
		CampagneStatut:      m.CampagneStatut,
		CampagneMatieres:    make([]MatiereLite, 0, len(m.CampagneMatieres)),
		CampagneEnseignants: make([]EnseignantLite, 0, len(m.CampagneEnseignants)),
		CampagneCreatedAt:   m.CampagneCreatedAt,
		CampagneUpdatedAt:   m.CampagneUpdatedAt,
	}
	if m.CampagneQuestionnaire != nil {
		resp.CampagneQuestionnaire = &QuestionnaireLite{
			QuestionnaireID:    m.CampagneQuestionnaire.QuestionnaireID,
			QuestionnaireTitre: m.CampagneQuestionnaire.QuestionnaireTitre,
		}
	}
	for i := range m.CampagneMatieres {
		mat := &m.CampagneMatieres[i]
		resp.CampagneMatieres = append(resp.CampagneMatieres, MatiereLite{
			MatiereID:   mat.MatiereID,
			MatiereCode: mat.MatiereCode,
			MatiereNom:  mat.MatiereNom,
		})
	}
	for i := range m.CampagneEnseignants {
		e := &m.CampagneEnseignants[i]
		resp.CampagneEnseignants = append(resp.CampagneEnseignants, EnseignantLite{
			UserID:   e.UserID,
			UserName: e.UserName,
		})
	}
	return resp
}

func ToCampagneResponses(ms []model.CampagneModel) []CampagneResponse {
	out := make([]CampagneResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToCampagneResponse(&ms[i]))
	}
	return out
}
