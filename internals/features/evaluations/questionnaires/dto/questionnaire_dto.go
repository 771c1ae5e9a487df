// file: internals/features/evaluations/questionnaires/dto/questionnaire_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campuseval_backend/internals/features/evaluations/questionnaires/model"
)

/* =========================
   REQUEST
   ========================= */

type QuestionInput struct {
	Texte       string `json:"texte" validate:"required,min=3,max=500"`
	Type        string `json:"type" validate:"required,oneof=etoiles commentaire"`
	Ordre       int    `json:"ordre" validate:"required,min=1"`
	Obligatoire bool   `json:"obligatoire"`
}

type CreateQuestionnaireRequest struct {
	Titre       string          `json:"titre" validate:"required,min=3,max=255"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	Questions   []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

// UpdateQuestionnaireRequest replaces the question list wholesale when
// Questions is non-nil. Partial question edits are not supported.
type UpdateQuestionnaireRequest struct {
	Titre       *string          `json:"titre" validate:"omitempty,min=3,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Questions   *[]QuestionInput `json:"questions" validate:"omitempty,min=1,dive"`
}

/* =========================
   RESPONSE
   ========================= */

type QuestionResponse struct {
	QuestionID  uuid.UUID `json:"question_id"`
	Texte       string    `json:"texte"`
	Type        string    `json:"type"`
	Ordre       int       `json:"ordre"`
	Obligatoire bool      `json:"obligatoire"`
}

type QuestionnaireResponse struct {
	QuestionnaireID uuid.UUID          `json:"questionnaire_id"`
	Titre           string             `json:"titre"`
	Description     *string            `json:"description,omitempty"`
	Questions       []QuestionResponse `json:"questions"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func ToQuestionnaireResponse(m *model.QuestionnaireModel) QuestionnaireResponse {
	questions := make([]QuestionResponse, 0, len(m.QuestionnaireQuestions))
	for i := range m.QuestionnaireQuestions {
		q := &m.QuestionnaireQuestions[i]
		questions = append(questions, QuestionResponse{
			QuestionID:  q.QuestionID,
			Texte:       q.QuestionTexte,
			Type:        q.QuestionType,
			Ordre:       q.QuestionOrdre,
			Obligatoire: q.QuestionObligatoire,
		})
	}
	return QuestionnaireResponse{
		QuestionnaireID: m.QuestionnaireID,
		Titre:           m.QuestionnaireTitre,
		Description:     m.QuestionnaireDescription,
		Questions:       questions,
		CreatedAt:       m.QuestionnaireCreatedAt,
		UpdatedAt:       m.QuestionnaireUpdatedAt,
	}
}

func ToQuestionnaireResponses(rows []model.QuestionnaireModel) []QuestionnaireResponse {
	out := make([]QuestionnaireResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToQuestionnaireResponse(&rows[i]))
	}
	return out
}
