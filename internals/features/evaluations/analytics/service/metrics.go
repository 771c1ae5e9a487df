// file: internals/features/evaluations/analytics/service/metrics.go
package service

import "math"

// Round2 rounds half away from zero to two decimals, matching the
// presentation the report views expect.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParticipationRate is reponses / (questionnaires * etudiants) * 100,
// rounded to two decimals. Any zero denominator factor yields 0 rather
// than an error: an empty directory simply has no participation yet.
func ParticipationRate(reponses, questionnaires, etudiants int64) float64 {
	if questionnaires == 0 || etudiants == 0 {
		return 0
	}
	return Round2(float64(reponses) / float64(questionnaires*etudiants) * 100)
}

// Moyenne averages star notes, 0 when there are none.
func Moyenne(sum float64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return Round2(sum / float64(count))
}
