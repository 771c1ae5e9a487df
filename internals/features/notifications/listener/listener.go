// file: internals/features/notifications/listener/listener.go
package listener

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campuseval_backend/internals/constants"
	"campuseval_backend/internals/events"
	"campuseval_backend/internals/features/notifications/service"
	userModel "campuseval_backend/internals/features/users/users/model"
)

// Listener turns campaign lifecycle events into notification rows. It runs
// on the bus dispatcher goroutine; errors are returned to the bus, which
// logs and moves on.
type Listener struct {
	DB      *gorm.DB
	Service *service.NotificationService
}

func New(db *gorm.DB) *Listener {
	return &Listener{DB: db, Service: service.NewNotificationService(db)}
}

// Register subscribes every handler on the bus.
func (l *Listener) Register(bus *events.Bus) {
	bus.Subscribe(events.CampagneCreated, l.onCampagneCreated)
	bus.Subscribe(events.CampagneActivated, l.onCampagneActivated)
	bus.Subscribe(events.CampagneClosed, l.onCampagneClosed)
	bus.Subscribe(events.EnseignantAddedToCampagne, l.onEnseignantAdded)
	bus.Subscribe(events.CampagneCompletedByStudent, l.onCampagneCompleted)
}

func (l *Listener) studentIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := l.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_status = ?", constants.RoleEtudiant, userModel.UserStatusActive).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (l *Listener) adminIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := l.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_status = ?", constants.RoleAdmin, userModel.UserStatusActive).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (l *Listener) onCampagneCreated(e events.Event) error {
	ctx := context.Background()
	p, ok := e.Payload.(events.CampagneCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}

	students, err := l.studentIDs(ctx)
	if err != nil {
		return err
	}
	// mail gateway stand-in
	log.Printf("[MAIL] campagne %q planifiee du %s au %s (%d etudiants notifies)",
		p.Titre, p.DateDebut.Format("2006-01-02"), p.DateFin.Format("2006-01-02"), len(students))

	return l.Service.NotifyUsers(ctx, students, e.Name,
		"Nouvelle campagne d'evaluation",
		fmt.Sprintf("La campagne %q est planifiee du %s au %s.",
			p.Titre, p.DateDebut.Format("2006-01-02"), p.DateFin.Format("2006-01-02")),
		p)
}

func (l *Listener) onCampagneActivated(e events.Event) error {
	ctx := context.Background()
	p, ok := e.Payload.(events.CampagneActivatedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}

	students, err := l.studentIDs(ctx)
	if err != nil {
		return err
	}
	log.Printf("[MAIL] campagne %q ouverte (%d etudiants notifies)", p.Titre, len(students))

	return l.Service.NotifyUsers(ctx, students, e.Name,
		"Campagne ouverte",
		fmt.Sprintf("La campagne %q est ouverte, vous pouvez soumettre vos evaluations.", p.Titre),
		p)
}

func (l *Listener) onCampagneClosed(e events.Event) error {
	ctx := context.Background()
	p, ok := e.Payload.(events.CampagneClosedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}

	admins, err := l.adminIDs(ctx)
	if err != nil {
		return err
	}
	log.Printf("[MAIL] campagne %q cloturee", p.Titre)

	return l.Service.NotifyUsers(ctx, admins, e.Name,
		"Campagne cloturee",
		fmt.Sprintf("La campagne %q est cloturee, les resultats sont disponibles.", p.Titre),
		p)
}

func (l *Listener) onEnseignantAdded(e events.Event) error {
	ctx := context.Background()
	p, ok := e.Payload.(events.EnseignantAddedToCampagneEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}

	return l.Service.NotifyUsers(ctx, []uuid.UUID{p.EnseignantID}, e.Name,
		"Vous etes concerne par une campagne",
		"Une campagne d'evaluation vous cible, les resultats vous seront communiques a la cloture.",
		p)
}

// onCampagneCompleted only keeps admins informed of activity; the student
// side is anonymous so there is nobody to notify.
func (l *Listener) onCampagneCompleted(e events.Event) error {
	ctx := context.Background()
	p, ok := e.Payload.(events.CampagneCompletedByStudentEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}

	admins, err := l.adminIDs(ctx)
	if err != nil {
		return err
	}
	return l.Service.NotifyUsers(ctx, admins, e.Name,
		"Nouvelle soumission",
		"Une evaluation anonyme vient d'etre soumise.",
		p)
}
