// file: internals/features/evaluations/campagnes/service/statut.go
package service

import (
	"time"

	model "campuseval_backend/internals/features/evaluations/campagnes/model"
)

// DeriveStatut computes the campaign status from the date window.
// Boundaries are inclusive: a campaign is ACTIVE at exactly date_debut
// and at exactly date_fin.
func DeriveStatut(now, dateDebut, dateFin time.Time) string {
	if now.Before(dateDebut) {
		return model.StatutInactive
	}
	if now.After(dateFin) {
		return model.StatutCloturee
	}
	return model.StatutActive
}

// TransitionFor compares the stored status against a fresh derivation.
// changed is false when the stored value already matches, so a second
// recompute right after a reconciliation is a no-op.
func TransitionFor(stored string, now, dateDebut, dateFin time.Time) (newStatut string, changed bool) {
	newStatut = DeriveStatut(now, dateDebut, dateFin)
	return newStatut, newStatut != stored
}

// ValidDateRange reports whether date_debut is strictly before date_fin.
func ValidDateRange(dateDebut, dateFin time.Time) bool {
	return dateDebut.Before(dateFin)
}

// IsValidStatut checks an explicit status override.
func IsValidStatut(s string) bool {
	switch s {
	case model.StatutInactive, model.StatutActive, model.StatutCloturee:
		return true
	}
	return false
}
