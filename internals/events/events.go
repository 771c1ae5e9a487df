// file: internals/events/events.go
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event names, mirrored in notification rows.
const (
	CampagneCreated            = "campagne.created"
	CampagneUpdated            = "campagne.updated"
	CampagneActivated          = "campagne.activated"
	CampagneClosed             = "campagne.closed"
	CampagneDeleted            = "campagne.deleted"
	MatiereAddedToCampagne     = "matiere.added.to.campagne"
	EnseignantAddedToCampagne  = "enseignant.added.to.campagne"
	ReponseSubmitted           = "reponse.submitted"
	CampagneCompletedByStudent = "campagne.completed.by.student"
)

// Event is a published domain event. Name drives dispatch; Payload is one
// of the typed structs below.
type Event struct {
	Name    string
	Payload any
}

type CampagneCreatedEvent struct {
	CampagneID      uuid.UUID
	Titre           string
	DateDebut       time.Time
	DateFin         time.Time
	QuestionnaireID uuid.UUID
}

type CampagneUpdatedEvent struct {
	CampagneID uuid.UUID
	Titre      string
	Statut     string
}

type CampagneDeletedEvent struct {
	CampagneID uuid.UUID
	Titre      string
}

type CampagneActivatedEvent struct {
	CampagneID uuid.UUID
	Titre      string
	DateDebut  time.Time
}

type CampagneClosedEvent struct {
	CampagneID uuid.UUID
	Titre      string
	DateFin    time.Time
}

type MatiereAddedToCampagneEvent struct {
	CampagneID uuid.UUID
	MatiereID  uuid.UUID
}

type EnseignantAddedToCampagneEvent struct {
	CampagneID   uuid.UUID
	EnseignantID uuid.UUID
}

// ReponseSubmittedEvent intentionally carries no submitter identity.
type ReponseSubmittedEvent struct {
	ReponseID    uuid.UUID
	CampagneID   uuid.UUID
	QuestionID   uuid.UUID
	FiliereID    uuid.UUID
	MatiereID    *uuid.UUID
	EnseignantID *uuid.UUID
	SubmittedAt  time.Time
}

type CampagneCompletedByStudentEvent struct {
	CampagneID  uuid.UUID
	FiliereID   uuid.UUID
	CompletedAt time.Time
}
