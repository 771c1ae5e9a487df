// file: internals/features/academics/matieres/controller/matiere_controller_test.go
package controller

import (
	"testing"

	"github.com/google/uuid"
)

func TestUniqueIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name string
		in   []uuid.UUID
		want int
	}{
		{"nil", nil, 0},
		{"no duplicates", []uuid.UUID{a, b}, 2},
		{"same id twice", []uuid.UUID{a, a}, 1},
		{"duplicate among others", []uuid.UUID{a, b, a}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uniqueIDs(tt.in)
			if len(got) != tt.want {
				t.Fatalf("uniqueIDs(%v) kept %d ids, want %d", tt.in, len(got), tt.want)
			}
			seen := make(map[uuid.UUID]struct{}, len(got))
			for _, id := range got {
				if _, ok := seen[id]; ok {
					t.Fatalf("id %s appears twice in output", id)
				}
				seen[id] = struct{}{}
			}
		})
	}
}

func TestUniqueIDsKeepsFirstOccurrenceOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := uniqueIDs([]uuid.UUID{a, b, a, b})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("uniqueIDs reordered ids: %v", got)
	}
}
