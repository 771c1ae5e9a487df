// file: internals/features/evaluations/questionnaires/model/question_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionTypeEtoiles     = "etoiles"     // 1-5 star rating
	QuestionTypeCommentaire = "commentaire" // free text
)

type QuestionModel struct {
	QuestionID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_id" json:"question_id"`
	QuestionTexte string    `gorm:"type:text;not null;column:question_texte" json:"question_texte"`
	QuestionType  string    `gorm:"type:varchar(20);not null;column:question_type" json:"question_type"`

	// position inside the questionnaire, unique per questionnaire
	QuestionOrdre       int  `gorm:"not null;column:question_ordre;uniqueIndex:uq_questions_ordre_per_questionnaire" json:"question_ordre"`
	QuestionObligatoire bool `gorm:"not null;default:false;column:question_obligatoire" json:"question_obligatoire"`

	QuestionQuestionnaireID uuid.UUID `gorm:"type:uuid;not null;column:question_questionnaire_id;uniqueIndex:uq_questions_ordre_per_questionnaire" json:"question_questionnaire_id"`

	QuestionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:question_created_at" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:question_updated_at" json:"question_updated_at"`
}

func (QuestionModel) TableName() string { return "questions" }

func IsValidQuestionType(t string) bool {
	return t == QuestionTypeEtoiles || t == QuestionTypeCommentaire
}
