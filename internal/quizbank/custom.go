package quizbank

import (
	"entlead/internal/models/db_models"
)

// CustomQuizPrefix keys custom instruments in session state so they are
// never confused with the built-in instruments.
const CustomQuizPrefix = "CUSTOM:"

// FromCustom converts a doctor-authored quiz row into a QuizDefinition.
// Custom quizzes sum arbitrary per-option point values, so severity is
// banded on percent-of-max (25/50/75) instead of published thresholds.
// The two scoring paths are not numerically comparable across quiz types.
func FromCustom(quiz *db_models.CustomQuiz) *QuizDefinition {
	def := &QuizDefinition{
		ID:              CustomQuizPrefix + quiz.ID.String(),
		Title:           quiz.Title,
		Description:     quiz.Description,
		ScoreMultiplier: 1,
		Interpretations: map[Severity]string{
			SeverityNormal:   "Your responses suggest minimal symptoms.",
			SeverityMild:     "Your responses suggest mild symptoms.",
			SeverityModerate: "Your responses suggest moderate symptoms. Consider an evaluation with {practice}.",
			SeveritySevere:   "Your responses suggest significant symptoms. We recommend a consultation with {practice}.",
		},
	}

	maxScore := 0
	for _, question := range quiz.Questions {
		q := Question{Text: question.Prompt}
		best := 0
		for _, option := range question.Options {
			q.Options = append(q.Options, Option{Text: option.Label, Value: option.Points})
			if option.Points > best {
				best = option.Points
			}
		}
		maxScore += best
		def.Questions = append(def.Questions, q)
	}
	def.MaxScore = maxScore

	def.Thresholds = []Threshold{
		{Severity: SeverityMild, MinScore: (maxScore + 3) / 4},
		{Severity: SeverityModerate, MinScore: (maxScore + 1) / 2},
		{Severity: SeveritySevere, MinScore: maxScore * 3 / 4},
	}

	return def
}
