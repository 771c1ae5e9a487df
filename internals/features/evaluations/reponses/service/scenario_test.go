// file: internals/features/evaluations/reponses/service/scenario_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	matiereModel "campuseval_backend/internals/features/academics/matieres/model"
	analyticsService "campuseval_backend/internals/features/evaluations/analytics/service"
	campagneModel "campuseval_backend/internals/features/evaluations/campagnes/model"
	campagneService "campuseval_backend/internals/features/evaluations/campagnes/service"
	questionnaireModel "campuseval_backend/internals/features/evaluations/questionnaires/model"
	dto "campuseval_backend/internals/features/evaluations/reponses/dto"
	reponseModel "campuseval_backend/internals/features/evaluations/reponses/model"
)

// Walks one campaign through its whole life at the pure-logic level:
// derive the status for a mid-window clock, validate a single 5-star
// submission against the targeted matiere, persist-shape the row, and
// feed the counts into the participation arithmetic.
func TestEvaluationScenario(t *testing.T) {
	debut := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	filiereID := uuid.New()
	matiere := matiereModel.MatiereModel{
		MatiereID:        uuid.New(),
		MatiereNom:       "Algorithmique",
		MatiereFiliereID: &filiereID,
	}
	question := questionnaireModel.QuestionModel{
		QuestionID:          uuid.New(),
		QuestionTexte:       "Qualite du cours ?",
		QuestionType:        questionnaireModel.QuestionTypeEtoiles,
		QuestionObligatoire: true,
	}

	campagne := campagneModel.CampagneModel{
		CampagneID:        uuid.New(),
		CampagneTitre:     "Evaluation S2",
		CampagneDateDebut: debut,
		CampagneDateFin:   fin,
		CampagneStatut:    campagneModel.StatutInactive,
		CampagneMatieres:  []matiereModel.MatiereModel{matiere},
	}

	// a read at now reconciles the stale INACTIVE status
	statut, changed := campagneService.TransitionFor(campagne.CampagneStatut, now, debut, fin)
	if statut != campagneModel.StatutActive || !changed {
		t.Fatalf("mid-window recompute = (%s, %v), want (ACTIVE, true)", statut, changed)
	}
	campagne.CampagneStatut = statut

	// the submission pipeline, in service order
	req := dto.SubmitEvaluationRequest{
		CampagneID: campagne.CampagneID,
		FiliereID:  filiereID,
		MatiereID:  &matiere.MatiereID,
		Reponses:   []dto.ReponseInput{{QuestionID: question.QuestionID, NoteEtoiles: ptrInt(5)}},
	}
	if err := CheckCampagneActive(&campagne); err != nil {
		t.Fatalf("CheckCampagneActive: %v", err)
	}
	if err := CheckTargetChoice(req.MatiereID, req.EnseignantID); err != nil {
		t.Fatalf("CheckTargetChoice: %v", err)
	}
	if err := CheckMatiereTarget(&campagne, &matiere, req.FiliereID); err != nil {
		t.Fatalf("CheckMatiereTarget: %v", err)
	}
	questions := QuestionIndex([]questionnaireModel.QuestionModel{question})
	if err := CheckReponses(questions, req.Reponses); err != nil {
		t.Fatalf("CheckReponses: %v", err)
	}

	row := reponseModel.ReponseModel{
		ReponseCampagneID:   req.CampagneID,
		ReponseQuestionID:   req.Reponses[0].QuestionID,
		ReponseFiliereID:    req.FiliereID,
		ReponseMatiereID:    req.MatiereID,
		ReponseEnseignantID: req.EnseignantID,
		ReponseNoteEtoiles:  req.Reponses[0].NoteEtoiles,
	}
	if row.ReponseMatiereID == nil || *row.ReponseMatiereID != matiere.MatiereID {
		t.Fatal("persisted row must carry the evaluated matiere")
	}
	if row.ReponseEnseignantID != nil {
		t.Fatal("matiere-targeted row must leave the enseignant column null")
	}
	if row.ReponseFiliereID != filiereID {
		t.Fatal("persisted row must carry the student's filiere")
	}
	if row.ReponseNoteEtoiles == nil || *row.ReponseNoteEtoiles != 5 {
		t.Fatal("persisted row must carry the 5-star note")
	}

	// the overview counts the row we just shaped
	persisted := []reponseModel.ReponseModel{row}
	totalReponses := int64(len(persisted))
	if got := analyticsService.ParticipationRate(totalReponses, 1, 20); got != 5.00 {
		t.Errorf("ParticipationRate(1, 1, 20) = %.2f, want 5.00", got)
	}
	if got := analyticsService.Moyenne(float64(*row.ReponseNoteEtoiles), totalReponses); got != 5.00 {
		t.Errorf("Moyenne over the single 5-star note = %.2f, want 5.00", got)
	}
}
