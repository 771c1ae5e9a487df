// file: internals/features/evaluations/campagnes/service/campagne_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campuseval_backend/internals/constants"
	"campuseval_backend/internals/events"
	matiereModel "campuseval_backend/internals/features/academics/matieres/model"
	dto "campuseval_backend/internals/features/evaluations/campagnes/dto"
	model "campuseval_backend/internals/features/evaluations/campagnes/model"
	questionnaireModel "campuseval_backend/internals/features/evaluations/questionnaires/model"
	reponseModel "campuseval_backend/internals/features/evaluations/reponses/model"
	userModel "campuseval_backend/internals/features/users/users/model"
	helper "campuseval_backend/internals/helpers"
)

// CampagneService owns the campaign lifecycle: creation, lazy status
// recomputation on read, partial update with optional status override,
// and deletion (responses cascade).
type CampagneService struct {
	DB  *gorm.DB
	Bus *events.Bus

	// Now is swapped in tests
	Now func() time.Time
}

func NewCampagneService(db *gorm.DB, bus *events.Bus) *CampagneService {
	return &CampagneService{DB: db, Bus: bus, Now: time.Now}
}

func (s *CampagneService) Create(ctx context.Context, req *dto.CreateCampagneRequest) (*model.CampagneModel, error) {
	if !ValidDateRange(req.CampagneDateDebut, req.CampagneDateFin) {
		return nil, helper.ErrBadRequest("INVALID_RANGE", "date_debut must be before date_fin")
	}
	if len(req.MatiereIDs) == 0 && len(req.EnseignantIDs) == 0 {
		return nil, helper.ErrBadRequest("NO_TARGET", "a campaign must target at least one matiere or one enseignant")
	}

	db := s.DB.WithContext(ctx)

	var questionnaire questionnaireModel.QuestionnaireModel
	if err := db.First(&questionnaire, "questionnaire_id = ?", req.CampagneQuestionnaireID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("questionnaire not found")
		}
		return nil, err
	}

	matieres, err := s.resolveMatieres(db, req.MatiereIDs)
	if err != nil {
		return nil, err
	}
	enseignants, err := s.resolveEnseignants(db, req.EnseignantIDs)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	campagne := model.CampagneModel{
		CampagneTitre:           strings.TrimSpace(req.CampagneTitre),
		CampagneDescription:     req.CampagneDescription,
		CampagneDateDebut:       req.CampagneDateDebut,
		CampagneDateFin:         req.CampagneDateFin,
		CampagneStatut:          DeriveStatut(now, req.CampagneDateDebut, req.CampagneDateFin),
		CampagneQuestionnaireID: req.CampagneQuestionnaireID,
		CampagneMatieres:        matieres,
		CampagneEnseignants:     enseignants,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&campagne).Error
	}); err != nil {
		return nil, err
	}

	s.Bus.Publish(events.Event{Name: events.CampagneCreated, Payload: events.CampagneCreatedEvent{
		CampagneID:      campagne.CampagneID,
		Titre:           campagne.CampagneTitre,
		DateDebut:       campagne.CampagneDateDebut,
		DateFin:         campagne.CampagneDateFin,
		QuestionnaireID: campagne.CampagneQuestionnaireID,
	}})
	for i := range matieres {
		s.Bus.Publish(events.Event{Name: events.MatiereAddedToCampagne, Payload: events.MatiereAddedToCampagneEvent{
			CampagneID: campagne.CampagneID,
			MatiereID:  matieres[i].MatiereID,
		}})
	}
	for i := range enseignants {
		s.Bus.Publish(events.Event{Name: events.EnseignantAddedToCampagne, Payload: events.EnseignantAddedToCampagneEvent{
			CampagneID:   campagne.CampagneID,
			EnseignantID: enseignants[i].UserID,
		}})
	}
	if campagne.CampagneStatut == model.StatutActive {
		s.publishActivated(&campagne)
	}

	campagne.CampagneQuestionnaire = &questionnaire
	return &campagne, nil
}

// GetByID loads a campaign and lazily reconciles its stored status with the
// clock. The recompute is idempotent: a second read of an unchanged campaign
// persists nothing and emits nothing.
func (s *CampagneService) GetByID(ctx context.Context, id uuid.UUID) (*model.CampagneModel, error) {
	db := s.DB.WithContext(ctx)

	var campagne model.CampagneModel
	err := db.
		Preload("CampagneQuestionnaire").
		Preload("CampagneQuestionnaire.QuestionnaireQuestions", func(q *gorm.DB) *gorm.DB {
			return q.Order("question_ordre ASC")
		}).
		Preload("CampagneMatieres").
		Preload("CampagneEnseignants").
		First(&campagne, "campagne_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("campagne not found")
		}
		return nil, err
	}

	if err := s.refreshStatut(db, &campagne); err != nil {
		return nil, err
	}
	return &campagne, nil
}

func (s *CampagneService) List(ctx context.Context, q *dto.ListCampagnesQuery, paging helper.Paging) ([]model.CampagneModel, int64, error) {
	db := s.DB.WithContext(ctx).Model(&model.CampagneModel{})

	if q.Statut != nil && *q.Statut != "" {
		db = db.Where("campagne_statut = ?", *q.Statut)
	}
	if q.QuestionnaireID != nil {
		db = db.Where("campagne_questionnaire_id = ?", *q.QuestionnaireID)
	}
	if q.DateDebut != nil {
		db = db.Where("campagne_date_fin >= ?", *q.DateDebut)
	}
	if q.DateFin != nil {
		db = db.Where("campagne_date_debut <= ?", *q.DateFin)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		db = db.Where("campagne_titre ILIKE ?", "%"+strings.TrimSpace(*q.Search)+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.CampagneModel
	err := db.
		Preload("CampagneQuestionnaire").
		Preload("CampagneMatieres").
		Preload("CampagneEnseignants").
		Order("campagne_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListActives is the student-facing feed: campaigns whose window contains
// now, with statuses reconciled before filtering.
func (s *CampagneService) ListActives(ctx context.Context) ([]model.CampagneModel, error) {
	db := s.DB.WithContext(ctx)
	now := s.Now()

	var rows []model.CampagneModel
	err := db.
		Preload("CampagneQuestionnaire").
		Preload("CampagneQuestionnaire.QuestionnaireQuestions", func(q *gorm.DB) *gorm.DB {
			return q.Order("question_ordre ASC")
		}).
		Preload("CampagneMatieres").
		Preload("CampagneEnseignants").
		Where("campagne_statut = ? OR (campagne_date_debut <= ? AND campagne_date_fin >= ?)",
			model.StatutActive, now, now).
		Order("campagne_date_fin ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	actives := rows[:0]
	for i := range rows {
		if err := s.refreshStatut(db, &rows[i]); err != nil {
			return nil, err
		}
		if rows[i].CampagneStatut == model.StatutActive {
			actives = append(actives, rows[i])
		}
	}
	return actives, nil
}

func (s *CampagneService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCampagneRequest) (*model.CampagneModel, error) {
	// load via GetByID so the stored status is already reconciled
	campagne, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	db := s.DB.WithContext(ctx)

	// dates: each validated against the other (possibly stored) one
	if req.CampagneDateDebut != nil || req.CampagneDateFin != nil {
		debut := campagne.CampagneDateDebut
		fin := campagne.CampagneDateFin
		if req.CampagneDateDebut != nil {
			debut = *req.CampagneDateDebut
		}
		if req.CampagneDateFin != nil {
			fin = *req.CampagneDateFin
		}
		if !ValidDateRange(debut, fin) {
			return nil, helper.ErrBadRequest("INVALID_RANGE", "date_debut must be before date_fin")
		}
		campagne.CampagneDateDebut = debut
		campagne.CampagneDateFin = fin
	}

	if req.CampagneTitre != nil {
		campagne.CampagneTitre = strings.TrimSpace(*req.CampagneTitre)
	}
	if req.CampagneDescription != nil {
		campagne.CampagneDescription = req.CampagneDescription
	}
	if req.CampagneQuestionnaireID != nil {
		var questionnaire questionnaireModel.QuestionnaireModel
		if err := db.First(&questionnaire, "questionnaire_id = ?", *req.CampagneQuestionnaireID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, helper.ErrNotFound("questionnaire not found")
			}
			return nil, err
		}
		campagne.CampagneQuestionnaireID = *req.CampagneQuestionnaireID
		campagne.CampagneQuestionnaire = &questionnaire
	}

	var addedMatieres []matiereModel.MatiereModel
	if req.MatiereIDs != nil {
		matieres, err := s.resolveMatieres(db, *req.MatiereIDs)
		if err != nil {
			return nil, err
		}
		campagne.CampagneMatieres = matieres
		addedMatieres = matieres
	}
	var addedEnseignants []userModel.UserModel
	if req.EnseignantIDs != nil {
		enseignants, err := s.resolveEnseignants(db, *req.EnseignantIDs)
		if err != nil {
			return nil, err
		}
		campagne.CampagneEnseignants = enseignants
		addedEnseignants = enseignants
	}

	if len(campagne.CampagneMatieres) == 0 && len(campagne.CampagneEnseignants) == 0 {
		return nil, helper.ErrBadRequest("NO_TARGET", "a campaign must target at least one matiere or one enseignant")
	}

	previousStatut := campagne.CampagneStatut
	if req.CampagneStatut != nil {
		if !IsValidStatut(*req.CampagneStatut) {
			return nil, helper.ErrBadRequest("BAD_REQUEST", "unknown statut")
		}
		campagne.CampagneStatut = *req.CampagneStatut
	} else {
		campagne.CampagneStatut = DeriveStatut(s.Now(), campagne.CampagneDateDebut, campagne.CampagneDateFin)
	}
	campagne.CampagneUpdatedAt = s.Now()

	if err := db.Transaction(func(tx *gorm.DB) error {
		if req.MatiereIDs != nil {
			if err := tx.Model(campagne).Association("CampagneMatieres").Replace(campagne.CampagneMatieres); err != nil {
				return err
			}
		}
		if req.EnseignantIDs != nil {
			if err := tx.Model(campagne).Association("CampagneEnseignants").Replace(campagne.CampagneEnseignants); err != nil {
				return err
			}
		}
		return tx.Omit("CampagneMatieres", "CampagneEnseignants", "CampagneQuestionnaire").Save(campagne).Error
	}); err != nil {
		return nil, err
	}

	for i := range addedMatieres {
		s.Bus.Publish(events.Event{Name: events.MatiereAddedToCampagne, Payload: events.MatiereAddedToCampagneEvent{
			CampagneID: campagne.CampagneID,
			MatiereID:  addedMatieres[i].MatiereID,
		}})
	}
	for i := range addedEnseignants {
		s.Bus.Publish(events.Event{Name: events.EnseignantAddedToCampagne, Payload: events.EnseignantAddedToCampagneEvent{
			CampagneID:   campagne.CampagneID,
			EnseignantID: addedEnseignants[i].UserID,
		}})
	}
	s.Bus.Publish(events.Event{Name: events.CampagneUpdated, Payload: events.CampagneUpdatedEvent{
		CampagneID: campagne.CampagneID,
		Titre:      campagne.CampagneTitre,
		Statut:     campagne.CampagneStatut,
	}})
	if previousStatut != model.StatutActive && campagne.CampagneStatut == model.StatutActive {
		s.publishActivated(campagne)
	}
	if previousStatut != model.StatutCloturee && campagne.CampagneStatut == model.StatutCloturee {
		s.publishClosed(campagne)
	}

	return campagne, nil
}

// Delete removes the campaign, its target links and its responses.
func (s *CampagneService) Delete(ctx context.Context, id uuid.UUID) error {
	campagne, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	db := s.DB.WithContext(ctx)

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reponse_campagne_id = ?", id).Delete(&reponseModel.ReponseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM campagne_matieres WHERE campagne_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM campagne_enseignants WHERE campagne_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CampagneModel{}, "campagne_id = ?", id).Error
	}); err != nil {
		return err
	}

	s.Bus.Publish(events.Event{Name: events.CampagneDeleted, Payload: events.CampagneDeletedEvent{
		CampagneID: campagne.CampagneID,
		Titre:      campagne.CampagneTitre,
	}})
	return nil
}

// refreshStatut persists the derived status when it drifted from the stored
// one and publishes the transition event. Safe under concurrent readers:
// the derivation is a pure function of the clock, so racers write the same
// value.
func (s *CampagneService) refreshStatut(db *gorm.DB, campagne *model.CampagneModel) error {
	newStatut, changed := TransitionFor(campagne.CampagneStatut, s.Now(), campagne.CampagneDateDebut, campagne.CampagneDateFin)
	if !changed {
		return nil
	}

	if err := db.Model(&model.CampagneModel{}).
		Where("campagne_id = ?", campagne.CampagneID).
		Updates(map[string]any{
			"campagne_statut":     newStatut,
			"campagne_updated_at": s.Now(),
		}).Error; err != nil {
		return err
	}
	campagne.CampagneStatut = newStatut

	switch newStatut {
	case model.StatutActive:
		s.publishActivated(campagne)
	case model.StatutCloturee:
		s.publishClosed(campagne)
	}
	return nil
}

func (s *CampagneService) publishActivated(campagne *model.CampagneModel) {
	s.Bus.Publish(events.Event{Name: events.CampagneActivated, Payload: events.CampagneActivatedEvent{
		CampagneID: campagne.CampagneID,
		Titre:      campagne.CampagneTitre,
		DateDebut:  campagne.CampagneDateDebut,
	}})
}

func (s *CampagneService) publishClosed(campagne *model.CampagneModel) {
	s.Bus.Publish(events.Event{Name: events.CampagneClosed, Payload: events.CampagneClosedEvent{
		CampagneID: campagne.CampagneID,
		Titre:      campagne.CampagneTitre,
		DateFin:    campagne.CampagneDateFin,
	}})
}

func (s *CampagneService) resolveMatieres(db *gorm.DB, ids []uuid.UUID) ([]matiereModel.MatiereModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var matieres []matiereModel.MatiereModel
	if err := db.Where("matiere_id IN ?", ids).Find(&matieres).Error; err != nil {
		return nil, err
	}
	if len(matieres) != len(uniqueIDs(ids)) {
		return nil, helper.ErrNotFound("one or more matieres not found")
	}
	return matieres, nil
}

func (s *CampagneService) resolveEnseignants(db *gorm.DB, ids []uuid.UUID) ([]userModel.UserModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var enseignants []userModel.UserModel
	if err := db.Where("user_id IN ? AND user_role = ?", ids, constants.RoleEnseignant).Find(&enseignants).Error; err != nil {
		return nil, err
	}
	if len(enseignants) != len(uniqueIDs(ids)) {
		return nil, helper.ErrNotFound("one or more enseignants not found")
	}
	return enseignants, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
