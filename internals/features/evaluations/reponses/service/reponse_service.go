// file: internals/features/evaluations/reponses/service/reponse_service.go
package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"campuseval_backend/internals/events"
	filiereModel "campuseval_backend/internals/features/academics/filieres/model"
	matiereModel "campuseval_backend/internals/features/academics/matieres/model"
	campagneModel "campuseval_backend/internals/features/evaluations/campagnes/model"
	dto "campuseval_backend/internals/features/evaluations/reponses/dto"
	model "campuseval_backend/internals/features/evaluations/reponses/model"
	userModel "campuseval_backend/internals/features/users/users/model"
	helper "campuseval_backend/internals/helpers"
)

// ReponseService validates and persists anonymous evaluation batches.
// No authentication identity is threaded through this path by design.
type ReponseService struct {
	DB  *gorm.DB
	Bus *events.Bus
}

func NewReponseService(db *gorm.DB, bus *events.Bus) *ReponseService {
	return &ReponseService{DB: db, Bus: bus}
}

// Submit runs the full validation pipeline, then persists the whole batch
// inside one transaction: either every row lands or none does.
func (s *ReponseService) Submit(ctx context.Context, req *dto.SubmitEvaluationRequest) error {
	db := s.DB.WithContext(ctx)

	// 1) campaign with questionnaire questions and target sets
	var campagne campagneModel.CampagneModel
	err := db.
		Preload("CampagneQuestionnaire").
		Preload("CampagneQuestionnaire.QuestionnaireQuestions").
		Preload("CampagneMatieres").
		Preload("CampagneEnseignants").
		First(&campagne, "campagne_id = ?", req.CampagneID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("campagne not found")
		}
		return err
	}

	// 2) stored status must be ACTIVE
	if err := CheckCampagneActive(&campagne); err != nil {
		return err
	}

	// 3) filiere must exist
	if err := db.First(&filiereModel.FiliereModel{}, "filiere_id = ?", req.FiliereID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("filiere not found")
		}
		return err
	}

	// 4) matiere XOR enseignant
	if err := CheckTargetChoice(req.MatiereID, req.EnseignantID); err != nil {
		return err
	}

	// 5/6) target must exist and be authorized for this campaign
	if req.MatiereID != nil {
		var matiere matiereModel.MatiereModel
		if err := db.First(&matiere, "matiere_id = ?", *req.MatiereID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound("matiere not found")
			}
			return err
		}
		if err := CheckMatiereTarget(&campagne, &matiere, req.FiliereID); err != nil {
			return err
		}
	}
	if req.EnseignantID != nil {
		if err := db.First(&userModel.UserModel{}, "user_id = ?", *req.EnseignantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound("enseignant not found")
			}
			return err
		}
		if err := CheckEnseignantTarget(&campagne, *req.EnseignantID); err != nil {
			return err
		}
	}

	// 7) every answer tuple against the questionnaire
	if campagne.CampagneQuestionnaire == nil {
		return helper.ErrNotFound("questionnaire not found")
	}
	questionIdx := QuestionIndex(campagne.CampagneQuestionnaire.QuestionnaireQuestions)
	if err := CheckReponses(questionIdx, req.Reponses); err != nil {
		return err
	}

	// 8) persist the batch atomically; rows carry no requester identity
	rows := make([]model.ReponseModel, 0, len(req.Reponses))
	for i := range req.Reponses {
		in := &req.Reponses[i]
		rows = append(rows, model.ReponseModel{
			ReponseCampagneID:   req.CampagneID,
			ReponseQuestionID:   in.QuestionID,
			ReponseFiliereID:    req.FiliereID,
			ReponseMatiereID:    req.MatiereID,
			ReponseEnseignantID: req.EnseignantID,
			ReponseNoteEtoiles:  in.NoteEtoiles,
			ReponseCommentaire:  in.Commentaire,
		})
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	}); err != nil {
		return err
	}

	// 9) events after commit, one per row + one per batch
	for i := range rows {
		s.Bus.Publish(events.Event{Name: events.ReponseSubmitted, Payload: events.ReponseSubmittedEvent{
			ReponseID:    rows[i].ReponseID,
			CampagneID:   req.CampagneID,
			QuestionID:   rows[i].ReponseQuestionID,
			FiliereID:    req.FiliereID,
			MatiereID:    req.MatiereID,
			EnseignantID: req.EnseignantID,
			SubmittedAt:  rows[i].ReponseCreatedAt,
		}})
	}
	s.Bus.Publish(events.Event{Name: events.CampagneCompletedByStudent, Payload: events.CampagneCompletedByStudentEvent{
		CampagneID:  req.CampagneID,
		FiliereID:   req.FiliereID,
		CompletedAt: time.Now(),
	}})

	return nil
}

// List is the admin/report view over stored responses. Filters combine
// conjunctively.
func (s *ReponseService) List(ctx context.Context, q *dto.ListReponsesQuery, paging helper.Paging) ([]model.ReponseModel, int64, error) {
	db := s.DB.WithContext(ctx).Model(&model.ReponseModel{})

	if q.CampagneID != nil {
		db = db.Where("reponse_campagne_id = ?", *q.CampagneID)
	}
	if q.QuestionID != nil {
		db = db.Where("reponse_question_id = ?", *q.QuestionID)
	}
	if q.FiliereID != nil {
		db = db.Where("reponse_filiere_id = ?", *q.FiliereID)
	}
	if q.MatiereID != nil {
		db = db.Where("reponse_matiere_id = ?", *q.MatiereID)
	}
	if q.EnseignantID != nil {
		db = db.Where("reponse_enseignant_id = ?", *q.EnseignantID)
	}
	if q.DateMin != nil {
		db = db.Where("reponse_created_at >= ?", *q.DateMin)
	}
	if q.DateMax != nil {
		db = db.Where("reponse_created_at <= ?", *q.DateMax)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ReponseModel
	err := db.Order("reponse_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
