// file: internals/features/evaluations/questionnaires/service/questionnaire_service.go
package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	campagneModel "campuseval_backend/internals/features/evaluations/campagnes/model"
	dto "campuseval_backend/internals/features/evaluations/questionnaires/dto"
	"campuseval_backend/internals/features/evaluations/questionnaires/model"
	helper "campuseval_backend/internals/helpers"
)

type QuestionnaireService struct {
	DB *gorm.DB
}

func NewQuestionnaireService(db *gorm.DB) *QuestionnaireService {
	return &QuestionnaireService{DB: db}
}

// CheckOrdres rejects duplicate positions inside one question list. The DB
// unique index backstops this, but we want a clean error before the insert.
func CheckOrdres(questions []dto.QuestionInput) error {
	seen := make(map[int]struct{}, len(questions))
	for i := range questions {
		ordre := questions[i].Ordre
		if _, dup := seen[ordre]; dup {
			return helper.ErrBadRequest("DUPLICATE_ORDRE", "two questions share position "+strconv.Itoa(ordre))
		}
		seen[ordre] = struct{}{}
	}
	return nil
}

func (s *QuestionnaireService) Create(ctx context.Context, req *dto.CreateQuestionnaireRequest) (*model.QuestionnaireModel, error) {
	if err := CheckOrdres(req.Questions); err != nil {
		return nil, err
	}

	questionnaire := model.QuestionnaireModel{
		QuestionnaireTitre:       req.Titre,
		QuestionnaireDescription: req.Description,
		QuestionnaireQuestions:   buildQuestions(req.Questions),
	}

	if err := s.DB.WithContext(ctx).Create(&questionnaire).Error; err != nil {
		return nil, helper.TranslatePGError(err)
	}
	return s.GetByID(ctx, questionnaire.QuestionnaireID)
}

func (s *QuestionnaireService) GetByID(ctx context.Context, id uuid.UUID) (*model.QuestionnaireModel, error) {
	var questionnaire model.QuestionnaireModel
	err := s.DB.WithContext(ctx).
		Preload("QuestionnaireQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_ordre ASC")
		}).
		First(&questionnaire, "questionnaire_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound("questionnaire not found")
	}
	if err != nil {
		return nil, err
	}
	return &questionnaire, nil
}

func (s *QuestionnaireService) List(ctx context.Context, paging helper.Paging) ([]model.QuestionnaireModel, int64, error) {
	db := s.DB.WithContext(ctx).Model(&model.QuestionnaireModel{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.QuestionnaireModel
	err := db.
		Preload("QuestionnaireQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_ordre ASC")
		}).
		Order("questionnaire_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update forbids touching a questionnaire already attached to a campaign
// that left INACTIVE: its questions are frozen once answers can exist.
func (s *QuestionnaireService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateQuestionnaireRequest) (*model.QuestionnaireModel, error) {
	questionnaire, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Questions != nil {
		if err := CheckOrdres(*req.Questions); err != nil {
			return nil, err
		}
		locked, err := s.usedByStartedCampagne(ctx, id)
		if err != nil {
			return nil, err
		}
		if locked {
			return nil, helper.ErrConflict("questionnaire is used by a started campaign, questions are frozen")
		}
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Titre != nil {
			questionnaire.QuestionnaireTitre = *req.Titre
		}
		if req.Description != nil {
			questionnaire.QuestionnaireDescription = req.Description
		}
		if err := tx.Model(questionnaire).
			Updates(map[string]interface{}{
				"questionnaire_titre":       questionnaire.QuestionnaireTitre,
				"questionnaire_description": questionnaire.QuestionnaireDescription,
				"questionnaire_updated_at":  time.Now(),
			}).Error; err != nil {
			return err
		}

		if req.Questions != nil {
			if err := tx.Where("question_questionnaire_id = ?", id).
				Delete(&model.QuestionModel{}).Error; err != nil {
				return err
			}
			questions := buildQuestions(*req.Questions)
			for i := range questions {
				questions[i].QuestionQuestionnaireID = id
			}
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, helper.TranslatePGError(err)
	}
	return s.GetByID(ctx, id)
}

func (s *QuestionnaireService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	var inUse int64
	err := s.DB.WithContext(ctx).Model(&campagneModel.CampagneModel{}).
		Where("campagne_questionnaire_id = ?", id).
		Count(&inUse).Error
	if err != nil {
		return err
	}
	if inUse > 0 {
		return helper.ErrConflict("questionnaire is referenced by a campaign")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_questionnaire_id = ?", id).
			Delete(&model.QuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuestionnaireModel{}, "questionnaire_id = ?", id).Error
	})
}

func (s *QuestionnaireService) usedByStartedCampagne(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&campagneModel.CampagneModel{}).
		Where("campagne_questionnaire_id = ? AND campagne_statut <> ?", id, campagneModel.StatutInactive).
		Count(&n).Error
	return n > 0, err
}

func buildQuestions(inputs []dto.QuestionInput) []model.QuestionModel {
	questions := make([]model.QuestionModel, 0, len(inputs))
	for i := range inputs {
		in := &inputs[i]
		questions = append(questions, model.QuestionModel{
			QuestionTexte:       in.Texte,
			QuestionType:        in.Type,
			QuestionOrdre:       in.Ordre,
			QuestionObligatoire: in.Obligatoire,
		})
	}
	return questions
}
