package service

import (
	"testing"
	"time"

	model "campuseval_backend/internals/features/evaluations/campagnes/model"
)

func TestDeriveStatut(t *testing.T) {
	debut := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before window", debut.Add(-time.Second), model.StatutInactive},
		{"exactly at date_debut", debut, model.StatutActive},
		{"inside window", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.StatutActive},
		{"exactly at date_fin", fin, model.StatutActive},
		{"after window", fin.Add(time.Second), model.StatutCloturee},
		{"long before", debut.AddDate(-1, 0, 0), model.StatutInactive},
		{"long after", fin.AddDate(1, 0, 0), model.StatutCloturee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatut(tt.now, debut, fin); got != tt.want {
				t.Errorf("DeriveStatut(%s) = %s, want %s", tt.now, got, tt.want)
			}
		})
	}
}

func TestDeriveStatutIsIdempotent(t *testing.T) {
	debut := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	first := DeriveStatut(now, debut, fin)
	second := DeriveStatut(now, debut, fin)
	if first != second {
		t.Fatalf("two derivations with the same clock disagree: %s vs %s", first, second)
	}
}

func TestTransitionFor(t *testing.T) {
	debut := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		stored      string
		now         time.Time
		want        string
		wantChanged bool
	}{
		{"inactive crosses into window", model.StatutInactive, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), model.StatutActive, true},
		{"active crosses past fin", model.StatutActive, fin.Add(time.Second), model.StatutCloturee, true},
		{"stale inactive past fin", model.StatutInactive, fin.AddDate(0, 1, 0), model.StatutCloturee, true},
		{"active still inside window", model.StatutActive, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), model.StatutActive, false},
		{"inactive before window", model.StatutInactive, debut.Add(-time.Hour), model.StatutInactive, false},
		{"closed stays closed", model.StatutCloturee, fin.AddDate(1, 0, 0), model.StatutCloturee, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := TransitionFor(tt.stored, tt.now, debut, fin)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("TransitionFor(%s, %s) = (%s, %v), want (%s, %v)",
					tt.stored, tt.now, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestTransitionForSecondRecomputeIsNoop(t *testing.T) {
	debut := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	reconciled, changed := TransitionFor(model.StatutInactive, now, debut, fin)
	if !changed || reconciled != model.StatutActive {
		t.Fatalf("first recompute = (%s, %v), want (ACTIVE, true)", reconciled, changed)
	}
	if _, changed := TransitionFor(reconciled, now, debut, fin); changed {
		t.Error("second recompute with the reconciled status must not report a transition")
	}
}

func TestValidDateRange(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if ValidDateRange(d, d) {
		t.Error("equal dates must be rejected")
	}
	if ValidDateRange(d.AddDate(0, 11, 30), d) {
		t.Error("debut after fin must be rejected")
	}
	if !ValidDateRange(d, d.Add(time.Hour)) {
		t.Error("debut before fin must be accepted")
	}
}

func TestIsValidStatut(t *testing.T) {
	for _, s := range []string{model.StatutInactive, model.StatutActive, model.StatutCloturee} {
		if !IsValidStatut(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if IsValidStatut("PAUSED") {
		t.Error("unknown statut accepted")
	}
}
