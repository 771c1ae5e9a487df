package service

import (
	"errors"
	"testing"

	dto "campuseval_backend/internals/features/evaluations/questionnaires/dto"
	helper "campuseval_backend/internals/helpers"
)

func TestCheckOrdres(t *testing.T) {
	tests := []struct {
		name    string
		ordres  []int
		wantErr bool
	}{
		{"sequential", []int{1, 2, 3}, false},
		{"gaps are fine", []int{1, 5, 9}, false},
		{"single", []int{1}, false},
		{"duplicate", []int{1, 2, 2}, true},
		{"duplicate non adjacent", []int{3, 1, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := make([]dto.QuestionInput, 0, len(tt.ordres))
			for _, o := range tt.ordres {
				questions = append(questions, dto.QuestionInput{Texte: "q", Type: "etoiles", Ordre: o})
			}
			err := CheckOrdres(questions)
			if tt.wantErr {
				var appErr *helper.AppError
				if !errors.As(err, &appErr) || appErr.Code != "DUPLICATE_ORDRE" {
					t.Fatalf("err = %v, want DUPLICATE_ORDRE", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
