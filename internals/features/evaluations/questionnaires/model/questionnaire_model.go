// file: internals/features/evaluations/questionnaires/model/questionnaire_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestionnaireModel struct {
	QuestionnaireID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:questionnaire_id" json:"questionnaire_id"`
	QuestionnaireTitre       string    `gorm:"type:varchar(255);not null;column:questionnaire_titre" json:"questionnaire_titre"`
	QuestionnaireDescription *string   `gorm:"type:text;column:questionnaire_description" json:"questionnaire_description,omitempty"`

	// ordered by question_ordre
	QuestionnaireQuestions []QuestionModel `gorm:"foreignKey:QuestionQuestionnaireID;references:QuestionnaireID" json:"questionnaire_questions,omitempty"`

	QuestionnaireCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:questionnaire_created_at" json:"questionnaire_created_at"`
	QuestionnaireUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:questionnaire_updated_at" json:"questionnaire_updated_at"`
}

func (QuestionnaireModel) TableName() string { return "questionnaires" }
