// file: internals/features/evaluations/analytics/dto/analytics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   REQUEST
   ========================= */

// AnalyticsFilter is the one filter shape shared by every analytics
// endpoint. Set fields combine conjunctively; nil fields are ignored.
type AnalyticsFilter struct {
	DateDebut    *time.Time `query:"date_debut"`
	DateFin      *time.Time `query:"date_fin"`
	DepartmentID *uuid.UUID `query:"department_id"`
	FiliereID    *uuid.UUID `query:"filiere_id"`
	MatiereID    *uuid.UUID `query:"matiere_id"`
	EnseignantID *uuid.UUID `query:"enseignant_id"`
	CampagneID   *uuid.UUID `query:"campagne_id"`
	Search       *string    `query:"search"`
}

/* =========================
   RESPONSE
   ========================= */

type OverviewResponse struct {
	TotalEtudiants      int64   `json:"total_etudiants"`
	TotalEnseignants    int64   `json:"total_enseignants"`
	TotalMatieres       int64   `json:"total_matieres"`
	TotalQuestionnaires int64   `json:"total_questionnaires"`
	TotalReponses       int64   `json:"total_reponses"`
	MoyenneGlobale      float64 `json:"moyenne_globale"`
	TauxParticipation   float64 `json:"taux_participation"`
}

type FiliereBreakdown struct {
	FiliereID      uuid.UUID `json:"filiere_id"`
	FiliereNom     string    `json:"filiere_nom"`
	TotalEtudiants int64     `json:"total_etudiants"`
	TotalReponses  int64     `json:"total_reponses"`
	Moyenne        float64   `json:"moyenne"`
}

type DepartmentStatsResponse struct {
	DepartmentID      uuid.UUID          `json:"department_id"`
	DepartmentNom     string             `json:"department_nom"`
	TotalEtudiants    int64              `json:"total_etudiants"`
	TotalEnseignants  int64              `json:"total_enseignants"`
	TotalFilieres     int64              `json:"total_filieres"`
	TotalMatieres     int64              `json:"total_matieres"`
	TotalReponses     int64              `json:"total_reponses"`
	MoyenneGlobale    float64            `json:"moyenne_globale"`
	TauxParticipation float64            `json:"taux_participation"`
	Filieres          []FiliereBreakdown `json:"filieres"`
}

type MatiereBreakdown struct {
	MatiereID     uuid.UUID `json:"matiere_id"`
	MatiereCode   string    `json:"matiere_code"`
	MatiereNom    string    `json:"matiere_nom"`
	Enseignants   []string  `json:"enseignants"`
	TotalReponses int64     `json:"total_reponses"`
	Moyenne       float64   `json:"moyenne"`
}

type FiliereStatsResponse struct {
	FiliereID         uuid.UUID          `json:"filiere_id"`
	FiliereNom        string             `json:"filiere_nom"`
	TotalEtudiants    int64              `json:"total_etudiants"`
	TotalMatieres     int64              `json:"total_matieres"`
	TotalReponses     int64              `json:"total_reponses"`
	MoyenneGlobale    float64            `json:"moyenne_globale"`
	TauxParticipation float64            `json:"taux_participation"`
	Matieres          []MatiereBreakdown `json:"matieres"`
}

// TrendPoint is one month of activity, period formatted YYYY-MM.
type TrendPoint struct {
	Periode           string  `json:"periode"`
	TotalReponses     int64   `json:"total_reponses"`
	Moyenne           float64 `json:"moyenne"`
	TauxParticipation float64 `json:"taux_participation"`
}

type StarBucket struct {
	Note  int   `json:"note"`
	Count int64 `json:"count"`
}

type QuestionDistribution struct {
	QuestionID    uuid.UUID    `json:"question_id"`
	QuestionTexte string       `json:"question_texte"`
	Ordre         int          `json:"ordre"`
	Buckets       []StarBucket `json:"buckets"`
	Moyenne       float64      `json:"moyenne"`
}

type DistributionResponse struct {
	CampagneID uuid.UUID              `json:"campagne_id"`
	Questions  []QuestionDistribution `json:"questions"`
}
