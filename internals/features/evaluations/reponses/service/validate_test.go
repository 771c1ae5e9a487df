package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	matiereModel "campuseval_backend/internals/features/academics/matieres/model"
	campagneModel "campuseval_backend/internals/features/evaluations/campagnes/model"
	questionnaireModel "campuseval_backend/internals/features/evaluations/questionnaires/model"
	dto "campuseval_backend/internals/features/evaluations/reponses/dto"
	reponseModel "campuseval_backend/internals/features/evaluations/reponses/model"
	userModel "campuseval_backend/internals/features/users/users/model"
	helper "campuseval_backend/internals/helpers"
)

func appCode(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var appErr *helper.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func ptrInt(v int) *int            { return &v }
func ptrStr(v string) *string      { return &v }
func ptrID(v uuid.UUID) *uuid.UUID { return &v }

func TestCheckCampagneActive(t *testing.T) {
	for _, statut := range []string{campagneModel.StatutInactive, campagneModel.StatutCloturee} {
		c := &campagneModel.CampagneModel{CampagneStatut: statut}
		if code := appCode(t, CheckCampagneActive(c)); code != "CAMPAIGN_NOT_ACTIVE" {
			t.Errorf("statut %s: code = %s, want CAMPAIGN_NOT_ACTIVE", statut, code)
		}
	}
	c := &campagneModel.CampagneModel{CampagneStatut: campagneModel.StatutActive}
	if err := CheckCampagneActive(c); err != nil {
		t.Errorf("active campaign rejected: %v", err)
	}
}

func TestCheckTargetChoice(t *testing.T) {
	id := uuid.New()

	if code := appCode(t, CheckTargetChoice(nil, nil)); code != "INVALID_TARGETING" {
		t.Errorf("neither set: code = %s", code)
	}
	if code := appCode(t, CheckTargetChoice(ptrID(id), ptrID(id))); code != "INVALID_TARGETING" {
		t.Errorf("both set: code = %s", code)
	}
	if err := CheckTargetChoice(ptrID(id), nil); err != nil {
		t.Errorf("matiere only rejected: %v", err)
	}
	if err := CheckTargetChoice(nil, ptrID(id)); err != nil {
		t.Errorf("enseignant only rejected: %v", err)
	}
}

func TestCheckMatiereTarget(t *testing.T) {
	filiereID := uuid.New()
	otherFiliere := uuid.New()
	matiere := &matiereModel.MatiereModel{MatiereID: uuid.New(), MatiereFiliereID: &filiereID}
	campagne := &campagneModel.CampagneModel{
		CampagneMatieres: []matiereModel.MatiereModel{*matiere},
	}

	if err := CheckMatiereTarget(campagne, matiere, filiereID); err != nil {
		t.Errorf("valid target rejected: %v", err)
	}

	// not targeted by the campaign
	stranger := &matiereModel.MatiereModel{MatiereID: uuid.New(), MatiereFiliereID: &filiereID}
	if code := appCode(t, CheckMatiereTarget(campagne, stranger, filiereID)); code != "FORBIDDEN" {
		t.Errorf("untargeted matiere: code = %s", code)
	}

	// filiere mismatch
	if code := appCode(t, CheckMatiereTarget(campagne, matiere, otherFiliere)); code != "FORBIDDEN" {
		t.Errorf("filiere mismatch: code = %s", code)
	}

	// matiere with no filiere at all
	orphan := &matiereModel.MatiereModel{MatiereID: matiere.MatiereID}
	if code := appCode(t, CheckMatiereTarget(campagne, orphan, filiereID)); code != "FORBIDDEN" {
		t.Errorf("matiere without filiere: code = %s", code)
	}
}

func TestCheckEnseignantTarget(t *testing.T) {
	targeted := uuid.New()
	campagne := &campagneModel.CampagneModel{
		CampagneEnseignants: []userModel.UserModel{{UserID: targeted}},
	}

	if err := CheckEnseignantTarget(campagne, targeted); err != nil {
		t.Errorf("targeted enseignant rejected: %v", err)
	}
	if code := appCode(t, CheckEnseignantTarget(campagne, uuid.New())); code != "FORBIDDEN" {
		t.Errorf("untargeted enseignant: code = %s", code)
	}
}

func TestCheckReponses(t *testing.T) {
	qID := uuid.New()
	starQ := questionnaireModel.QuestionModel{
		QuestionID:    qID,
		QuestionTexte: "Clarity of the lectures",
		QuestionType:  questionnaireModel.QuestionTypeEtoiles,
	}
	commentQID := uuid.New()
	commentQ := questionnaireModel.QuestionModel{
		QuestionID:          commentQID,
		QuestionTexte:       "What would you improve?",
		QuestionType:        questionnaireModel.QuestionTypeCommentaire,
		QuestionObligatoire: true,
	}
	idx := QuestionIndex([]questionnaireModel.QuestionModel{starQ, commentQ})

	t.Run("valid batch", func(t *testing.T) {
		err := CheckReponses(idx, []dto.ReponseInput{
			{QuestionID: qID, NoteEtoiles: ptrInt(5)},
			{QuestionID: commentQID, Commentaire: ptrStr("more exercises")},
		})
		if err != nil {
			t.Fatalf("valid batch rejected: %v", err)
		}
	})

	t.Run("unknown question", func(t *testing.T) {
		err := CheckReponses(idx, []dto.ReponseInput{{QuestionID: uuid.New(), NoteEtoiles: ptrInt(3)}})
		if code := appCode(t, err); code != "UNKNOWN_QUESTION" {
			t.Errorf("code = %s", code)
		}
	})

	t.Run("rating question answered with comment only", func(t *testing.T) {
		err := CheckReponses(idx, []dto.ReponseInput{{QuestionID: qID, Commentaire: ptrStr("great")}})
		if code := appCode(t, err); code != "TYPE_MISMATCH" {
			t.Errorf("code = %s", code)
		}
	})

	t.Run("comment question answered with rating only", func(t *testing.T) {
		err := CheckReponses(idx, []dto.ReponseInput{{QuestionID: commentQID, NoteEtoiles: ptrInt(4)}})
		if code := appCode(t, err); code != "TYPE_MISMATCH" {
			t.Errorf("code = %s", code)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		err := CheckReponses(idx, []dto.ReponseInput{{QuestionID: qID, NoteEtoiles: ptrInt(6)}})
		if code := appCode(t, err); code != "TYPE_MISMATCH" {
			t.Errorf("code = %s", code)
		}
	})

	t.Run("required comment left blank", func(t *testing.T) {
		err := CheckReponses(idx, []dto.ReponseInput{{QuestionID: commentQID, Commentaire: ptrStr("   ")}})
		if appCode(t, err) == "" {
			t.Error("blank required comment accepted")
		}
	})
}

// The Reponse row type must not be able to carry a submitter identity.
// This is the structural anonymity invariant: the field does not exist,
// it is not merely left empty.
func TestReponseModelHasNoUserField(t *testing.T) {
	typ := reflect.TypeOf(reponseModel.ReponseModel{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name := f.Name
		if name == "ReponseUserID" || name == "ReponseStudentID" || name == "ReponseSubmitterID" {
			t.Fatalf("Reponse model carries an identity field: %s", name)
		}
		if tag := f.Tag.Get("gorm"); tag != "" {
			for _, leak := range []string{"user_id", "student_id", "etudiant_id", "submitter"} {
				if strings.Contains(tag, leak) {
					t.Fatalf("Reponse column leaks identity: %s (%s)", name, tag)
				}
			}
		}
	}
}
