// file: internals/features/evaluations/reponses/service/validate.go
package service

import (
	"strings"

	"github.com/google/uuid"

	matiereModel "campuseval_backend/internals/features/academics/matieres/model"
	campagneModel "campuseval_backend/internals/features/evaluations/campagnes/model"
	questionnaireModel "campuseval_backend/internals/features/evaluations/questionnaires/model"
	dto "campuseval_backend/internals/features/evaluations/reponses/dto"
	helper "campuseval_backend/internals/helpers"
)

// Pure validation pipeline over pre-loaded data. The service loads the
// campaign (with questionnaire questions and target sets) and the matiere,
// then runs these checks; nothing here touches the database.

// CheckCampagneActive validates against the *stored* status, not a fresh
// derivation: a stale-INACTIVE campaign rejects submissions until some read
// reconciles it.
func CheckCampagneActive(campagne *campagneModel.CampagneModel) error {
	if campagne.CampagneStatut != campagneModel.StatutActive {
		return helper.ErrBadRequest("CAMPAIGN_NOT_ACTIVE", "this campaign is not currently active")
	}
	return nil
}

// CheckTargetChoice enforces the matiere XOR enseignant rule.
func CheckTargetChoice(matiereID, enseignantID *uuid.UUID) error {
	if (matiereID == nil) == (enseignantID == nil) {
		return helper.ErrBadRequest("INVALID_TARGETING", "evaluate either a matiere or an enseignant, not both or neither")
	}
	return nil
}

// CheckMatiereTarget: the matiere must be targeted by the campaign and
// belong to the submitting student's filiere.
func CheckMatiereTarget(campagne *campagneModel.CampagneModel, matiere *matiereModel.MatiereModel, filiereID uuid.UUID) error {
	if !campagne.HasMatiere(matiere.MatiereID) {
		return helper.ErrForbidden("this matiere is not part of the campaign")
	}
	if matiere.MatiereFiliereID == nil || *matiere.MatiereFiliereID != filiereID {
		return helper.ErrForbidden("you can only evaluate matieres of your own filiere")
	}
	return nil
}

// CheckEnseignantTarget: the enseignant must be targeted by the campaign.
func CheckEnseignantTarget(campagne *campagneModel.CampagneModel, enseignantID uuid.UUID) error {
	if !campagne.HasEnseignant(enseignantID) {
		return helper.ErrForbidden("this enseignant is not part of the campaign")
	}
	return nil
}

// CheckReponses validates every answer tuple against the questionnaire.
func CheckReponses(questions map[uuid.UUID]*questionnaireModel.QuestionModel, reponses []dto.ReponseInput) error {
	for i := range reponses {
		r := &reponses[i]
		question, ok := questions[r.QuestionID]
		if !ok {
			return helper.ErrBadRequest("UNKNOWN_QUESTION", "question "+r.QuestionID.String()+" does not belong to this questionnaire")
		}

		switch question.QuestionType {
		case questionnaireModel.QuestionTypeEtoiles:
			if r.NoteEtoiles == nil {
				return helper.ErrBadRequest("TYPE_MISMATCH", `question "`+question.QuestionTexte+`" requires a star rating`)
			}
			if *r.NoteEtoiles < 1 || *r.NoteEtoiles > 5 {
				return helper.ErrBadRequest("TYPE_MISMATCH", `question "`+question.QuestionTexte+`" requires a rating between 1 and 5`)
			}
		case questionnaireModel.QuestionTypeCommentaire:
			if r.Commentaire == nil || strings.TrimSpace(*r.Commentaire) == "" {
				return helper.ErrBadRequest("TYPE_MISMATCH", `question "`+question.QuestionTexte+`" requires a comment`)
			}
		}

		if question.QuestionObligatoire {
			switch question.QuestionType {
			case questionnaireModel.QuestionTypeEtoiles:
				if r.NoteEtoiles == nil || *r.NoteEtoiles == 0 {
					return helper.ErrBadRequest("REQUIRED_FIELD_MISSING", `question "`+question.QuestionTexte+`" is required`)
				}
			case questionnaireModel.QuestionTypeCommentaire:
				if r.Commentaire == nil || strings.TrimSpace(*r.Commentaire) == "" {
					return helper.ErrBadRequest("REQUIRED_FIELD_MISSING", `question "`+question.QuestionTexte+`" is required`)
				}
			}
		}
	}
	return nil
}

// QuestionIndex builds the lookup used by CheckReponses.
func QuestionIndex(questions []questionnaireModel.QuestionModel) map[uuid.UUID]*questionnaireModel.QuestionModel {
	idx := make(map[uuid.UUID]*questionnaireModel.QuestionModel, len(questions))
	for i := range questions {
		idx[questions[i].QuestionID] = &questions[i]
	}
	return idx
}
