package service

import "testing"

func TestParticipationRate(t *testing.T) {
	tests := []struct {
		name                                string
		reponses, questionnaires, etudiants int64
		want                                float64
	}{
		{"5 of 2x10", 5, 2, 10, 25.00},
		{"full participation", 20, 2, 10, 100.00},
		{"zero questionnaires", 5, 0, 10, 0},
		{"zero etudiants", 5, 2, 0, 0},
		{"zero reponses", 0, 2, 10, 0},
		{"rounds to 2dp", 1, 3, 1, 33.33},
		{"over 100 allowed", 30, 2, 10, 150.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParticipationRate(tt.reponses, tt.questionnaires, tt.etudiants)
			if got != tt.want {
				t.Errorf("ParticipationRate(%d, %d, %d) = %v, want %v",
					tt.reponses, tt.questionnaires, tt.etudiants, got, tt.want)
			}
		})
	}
}

func TestMoyenne(t *testing.T) {
	if got := Moyenne(0, 0); got != 0 {
		t.Errorf("empty moyenne = %v, want 0", got)
	}
	if got := Moyenne(14, 4); got != 3.5 {
		t.Errorf("Moyenne(14, 4) = %v, want 3.5", got)
	}
	if got := Moyenne(10, 3); got != 3.33 {
		t.Errorf("Moyenne(10, 3) = %v, want 3.33", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{3.14159, 3.14},
		{2.676, 2.68},
		{0, 0},
		{99.999, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
