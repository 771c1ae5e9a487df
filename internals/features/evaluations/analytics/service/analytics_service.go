// file: internals/features/evaluations/analytics/service/analytics_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campuseval_backend/internals/constants"
	departmentModel "campuseval_backend/internals/features/academics/departments/model"
	filiereModel "campuseval_backend/internals/features/academics/filieres/model"
	matiereModel "campuseval_backend/internals/features/academics/matieres/model"
	dto "campuseval_backend/internals/features/evaluations/analytics/dto"
	campagneModel "campuseval_backend/internals/features/evaluations/campagnes/model"
	questionnaireModel "campuseval_backend/internals/features/evaluations/questionnaires/model"
	reponseModel "campuseval_backend/internals/features/evaluations/reponses/model"
	userModel "campuseval_backend/internals/features/users/users/model"
	helper "campuseval_backend/internals/helpers"
)

// AnalyticsService recomputes every figure from the stored responses on
// each call. Nothing is cached or materialized.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// scopeReponses applies the filter to the reponses table. Filters combine
// conjunctively; department needs a join through filieres.
func (s *AnalyticsService) scopeReponses(ctx context.Context, f *dto.AnalyticsFilter) *gorm.DB {
	db := s.DB.WithContext(ctx).Model(&reponseModel.ReponseModel{})

	if f.DateDebut != nil {
		db = db.Where("reponse_created_at >= ?", *f.DateDebut)
	}
	if f.DateFin != nil {
		db = db.Where("reponse_created_at <= ?", *f.DateFin)
	}
	if f.CampagneID != nil {
		db = db.Where("reponse_campagne_id = ?", *f.CampagneID)
	}
	if f.FiliereID != nil {
		db = db.Where("reponse_filiere_id = ?", *f.FiliereID)
	}
	if f.MatiereID != nil {
		db = db.Where("reponse_matiere_id = ?", *f.MatiereID)
	}
	if f.EnseignantID != nil {
		db = db.Where("reponse_enseignant_id = ?", *f.EnseignantID)
	}
	if f.DepartmentID != nil {
		db = db.Where(
			"reponse_filiere_id IN (?)",
			s.DB.Model(&filiereModel.FiliereModel{}).
				Select("filiere_id").
				Where("filiere_department_id = ?", *f.DepartmentID),
		)
	}
	return db
}

type avgRow struct {
	Sum   float64
	Count int64
}

func (s *AnalyticsService) moyenneOf(db *gorm.DB) (float64, error) {
	var row avgRow
	err := db.
		Select("COALESCE(SUM(reponse_note_etoiles), 0) AS sum, COUNT(reponse_note_etoiles) AS count").
		Where("reponse_note_etoiles IS NOT NULL").
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return Moyenne(row.Sum, row.Count), nil
}

func (s *AnalyticsService) Overview(ctx context.Context, f *dto.AnalyticsFilter) (*dto.OverviewResponse, error) {
	var out dto.OverviewResponse

	if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleEtudiant).
		Count(&out.TotalEtudiants).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleEnseignant).
		Count(&out.TotalEnseignants).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&matiereModel.MatiereModel{}).
		Count(&out.TotalMatieres).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&questionnaireModel.QuestionnaireModel{}).
		Count(&out.TotalQuestionnaires).Error; err != nil {
		return nil, err
	}

	if err := s.scopeReponses(ctx, f).Count(&out.TotalReponses).Error; err != nil {
		return nil, err
	}
	moyenne, err := s.moyenneOf(s.scopeReponses(ctx, f))
	if err != nil {
		return nil, err
	}
	out.MoyenneGlobale = moyenne
	out.TauxParticipation = ParticipationRate(out.TotalReponses, out.TotalQuestionnaires, out.TotalEtudiants)
	return &out, nil
}

func (s *AnalyticsService) DepartmentStats(ctx context.Context, id uuid.UUID, f *dto.AnalyticsFilter, paging helper.Paging) (*dto.DepartmentStatsResponse, int64, error) {
	var department departmentModel.DepartmentModel
	err := s.DB.WithContext(ctx).First(&department, "department_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, helper.ErrNotFound("department not found")
	}
	if err != nil {
		return nil, 0, err
	}

	out := dto.DepartmentStatsResponse{
		DepartmentID:  department.DepartmentID,
		DepartmentNom: department.DepartmentName,
	}

	if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_department_id = ?", constants.RoleEtudiant, id).
		Count(&out.TotalEtudiants).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_department_id = ?", constants.RoleEnseignant, id).
		Count(&out.TotalEnseignants).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.WithContext(ctx).Model(&filiereModel.FiliereModel{}).
		Where("filiere_department_id = ?", id).
		Count(&out.TotalFilieres).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.WithContext(ctx).Model(&matiereModel.MatiereModel{}).
		Where("matiere_department_id = ?", id).
		Count(&out.TotalMatieres).Error; err != nil {
		return nil, 0, err
	}

	scoped := *f
	scoped.DepartmentID = &id
	if err := s.scopeReponses(ctx, &scoped).Count(&out.TotalReponses).Error; err != nil {
		return nil, 0, err
	}
	moyenne, err := s.moyenneOf(s.scopeReponses(ctx, &scoped))
	if err != nil {
		return nil, 0, err
	}
	out.MoyenneGlobale = moyenne

	var totalQuestionnaires int64
	if err := s.DB.WithContext(ctx).Model(&questionnaireModel.QuestionnaireModel{}).
		Count(&totalQuestionnaires).Error; err != nil {
		return nil, 0, err
	}
	out.TauxParticipation = ParticipationRate(out.TotalReponses, totalQuestionnaires, out.TotalEtudiants)

	filieres, totalFilieres, err := s.filiereBreakdown(ctx, id, &scoped, paging)
	if err != nil {
		return nil, 0, err
	}
	out.Filieres = filieres
	return &out, totalFilieres, nil
}

func (s *AnalyticsService) filiereBreakdown(ctx context.Context, departmentID uuid.UUID, f *dto.AnalyticsFilter, paging helper.Paging) ([]dto.FiliereBreakdown, int64, error) {
	db := s.DB.WithContext(ctx).Model(&filiereModel.FiliereModel{}).
		Where("filiere_department_id = ?", departmentID)
	if f.Search != nil && *f.Search != "" {
		db = db.Where("filiere_name ILIKE ?", "%"+*f.Search+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var filieres []filiereModel.FiliereModel
	err := db.Order("filiere_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&filieres).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.FiliereBreakdown, 0, len(filieres))
	for i := range filieres {
		fil := &filieres[i]
		row := dto.FiliereBreakdown{
			FiliereID:  fil.FiliereID,
			FiliereNom: fil.FiliereName,
		}
		if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).
			Where("user_role = ? AND user_filiere_id = ?", constants.RoleEtudiant, fil.FiliereID).
			Count(&row.TotalEtudiants).Error; err != nil {
			return nil, 0, err
		}

		scoped := *f
		scoped.FiliereID = &fil.FiliereID
		scoped.DepartmentID = nil
		if err := s.scopeReponses(ctx, &scoped).Count(&row.TotalReponses).Error; err != nil {
			return nil, 0, err
		}
		moyenne, err := s.moyenneOf(s.scopeReponses(ctx, &scoped))
		if err != nil {
			return nil, 0, err
		}
		row.Moyenne = moyenne
		out = append(out, row)
	}
	return out, total, nil
}

func (s *AnalyticsService) FiliereStats(ctx context.Context, id uuid.UUID, f *dto.AnalyticsFilter, paging helper.Paging) (*dto.FiliereStatsResponse, int64, error) {
	var filiere filiereModel.FiliereModel
	err := s.DB.WithContext(ctx).First(&filiere, "filiere_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, helper.ErrNotFound("filiere not found")
	}
	if err != nil {
		return nil, 0, err
	}

	out := dto.FiliereStatsResponse{
		FiliereID:  filiere.FiliereID,
		FiliereNom: filiere.FiliereName,
	}

	if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_filiere_id = ?", constants.RoleEtudiant, id).
		Count(&out.TotalEtudiants).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.WithContext(ctx).Model(&matiereModel.MatiereModel{}).
		Where("matiere_filiere_id = ?", id).
		Count(&out.TotalMatieres).Error; err != nil {
		return nil, 0, err
	}

	scoped := *f
	scoped.FiliereID = &id
	if err := s.scopeReponses(ctx, &scoped).Count(&out.TotalReponses).Error; err != nil {
		return nil, 0, err
	}
	moyenne, err := s.moyenneOf(s.scopeReponses(ctx, &scoped))
	if err != nil {
		return nil, 0, err
	}
	out.MoyenneGlobale = moyenne

	var totalQuestionnaires int64
	if err := s.DB.WithContext(ctx).Model(&questionnaireModel.QuestionnaireModel{}).
		Count(&totalQuestionnaires).Error; err != nil {
		return nil, 0, err
	}
	out.TauxParticipation = ParticipationRate(out.TotalReponses, totalQuestionnaires, out.TotalEtudiants)

	matieres, totalMatieres, err := s.matiereBreakdown(ctx, id, &scoped, paging)
	if err != nil {
		return nil, 0, err
	}
	out.Matieres = matieres
	return &out, totalMatieres, nil
}

func (s *AnalyticsService) matiereBreakdown(ctx context.Context, filiereID uuid.UUID, f *dto.AnalyticsFilter, paging helper.Paging) ([]dto.MatiereBreakdown, int64, error) {
	db := s.DB.WithContext(ctx).Model(&matiereModel.MatiereModel{}).
		Where("matiere_filiere_id = ?", filiereID)
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		db = db.Where("matiere_nom ILIKE ? OR matiere_code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var matieres []matiereModel.MatiereModel
	err := db.Preload("MatiereEnseignants").
		Order("matiere_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&matieres).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.MatiereBreakdown, 0, len(matieres))
	for i := range matieres {
		m := &matieres[i]
		row := dto.MatiereBreakdown{
			MatiereID:   m.MatiereID,
			MatiereCode: m.MatiereCode,
			MatiereNom:  m.MatiereNom,
		}
		for j := range m.MatiereEnseignants {
			row.Enseignants = append(row.Enseignants, m.MatiereEnseignants[j].UserName)
		}

		scoped := *f
		scoped.MatiereID = &m.MatiereID
		scoped.FiliereID = nil
		if err := s.scopeReponses(ctx, &scoped).Count(&row.TotalReponses).Error; err != nil {
			return nil, 0, err
		}
		moyenne, err := s.moyenneOf(s.scopeReponses(ctx, &scoped))
		if err != nil {
			return nil, 0, err
		}
		row.Moyenne = moyenne
		out = append(out, row)
	}
	return out, total, nil
}

type trendRow struct {
	Periode string
	Count   int64
	Sum     float64
	Noted   int64
}

// Trends groups filtered responses by month, most recent first. Pagination
// applies to the grouped periods, not the raw rows.
func (s *AnalyticsService) Trends(ctx context.Context, f *dto.AnalyticsFilter, paging helper.Paging) ([]dto.TrendPoint, int64, error) {
	grouped := func() *gorm.DB {
		return s.scopeReponses(ctx, f).
			Select(`to_char(reponse_created_at, 'YYYY-MM') AS periode,
				COUNT(*) AS count,
				COALESCE(SUM(reponse_note_etoiles), 0) AS sum,
				COUNT(reponse_note_etoiles) AS noted`).
			Group("to_char(reponse_created_at, 'YYYY-MM')")
	}

	var total int64
	if err := s.DB.WithContext(ctx).
		Table("(?) AS periods", grouped()).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []trendRow
	err := grouped().
		Order("periode DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var totalEtudiants, totalQuestionnaires int64
	if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleEtudiant).
		Count(&totalEtudiants).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.WithContext(ctx).Model(&questionnaireModel.QuestionnaireModel{}).
		Count(&totalQuestionnaires).Error; err != nil {
		return nil, 0, err
	}

	out := make([]dto.TrendPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TrendPoint{
			Periode:           r.Periode,
			TotalReponses:     r.Count,
			Moyenne:           Moyenne(r.Sum, r.Noted),
			TauxParticipation: ParticipationRate(r.Count, totalQuestionnaires, totalEtudiants),
		})
	}
	return out, total, nil
}

type bucketRow struct {
	QuestionID uuid.UUID
	Note       int
	Count      int64
}

// Distribution counts responses per star value for every rated question of
// one campaign.
func (s *AnalyticsService) Distribution(ctx context.Context, campagneID uuid.UUID) (*dto.DistributionResponse, error) {
	var campagne campagneModel.CampagneModel
	err := s.DB.WithContext(ctx).
		Preload("CampagneQuestionnaire.QuestionnaireQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_ordre ASC")
		}).
		First(&campagne, "campagne_id = ?", campagneID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound("campagne not found")
	}
	if err != nil {
		return nil, err
	}
	if campagne.CampagneQuestionnaire == nil {
		return nil, helper.ErrNotFound("questionnaire not found")
	}

	var rows []bucketRow
	err = s.DB.WithContext(ctx).Model(&reponseModel.ReponseModel{}).
		Select("reponse_question_id AS question_id, reponse_note_etoiles AS note, COUNT(*) AS count").
		Where("reponse_campagne_id = ? AND reponse_note_etoiles IS NOT NULL", campagneID).
		Group("reponse_question_id, reponse_note_etoiles").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[uuid.UUID]map[int]int64, len(rows))
	for _, r := range rows {
		if byQuestion[r.QuestionID] == nil {
			byQuestion[r.QuestionID] = make(map[int]int64, 5)
		}
		byQuestion[r.QuestionID][r.Note] = r.Count
	}

	out := dto.DistributionResponse{CampagneID: campagneID}
	for i := range campagne.CampagneQuestionnaire.QuestionnaireQuestions {
		q := &campagne.CampagneQuestionnaire.QuestionnaireQuestions[i]
		if q.QuestionType != questionnaireModel.QuestionTypeEtoiles {
			continue
		}
		dist := dto.QuestionDistribution{
			QuestionID:    q.QuestionID,
			QuestionTexte: q.QuestionTexte,
			Ordre:         q.QuestionOrdre,
		}
		var sum float64
		var count int64
		for note := 1; note <= 5; note++ {
			n := byQuestion[q.QuestionID][note]
			dist.Buckets = append(dist.Buckets, dto.StarBucket{Note: note, Count: n})
			sum += float64(note) * float64(n)
			count += n
		}
		dist.Moyenne = Moyenne(sum, count)
		out.Questions = append(out.Questions, dist)
	}
	return &out, nil
}
