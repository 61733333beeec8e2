package services

import (
	"strings"

	"entlead/internal/quizbank"
	"entlead/pkg/utils"

	mem "entlead/pkg/memcache"
)

const defaultPracticeName = "our practice"

// AssessmentResult is the deterministic outcome of scoring a complete
// answer sequence against an instrument definition.
type AssessmentResult struct {
	Score          int
	MaxScore       int
	Severity       quizbank.Severity
	Interpretation string
}

// ScoreAssessment sums the selected option values (times the instrument
// multiplier) and bands the total against the instrument thresholds.
// The answer set must cover every question exactly once, in order; an
// incomplete or out-of-order set is a programming error upstream, not a
// user-facing condition.
func ScoreAssessment(def *quizbank.QuizDefinition, answers []mem.AnswerRecord, practiceName string) (AssessmentResult, error) {
	if len(answers) != len(def.Questions) {
		return AssessmentResult{}, utils.ErrIncompleteAnswers
	}

	total := 0
	for i, answer := range answers {
		if answer.QuestionIndex != i {
			return AssessmentResult{}, utils.ErrIncompleteAnswers
		}
		options := def.Questions[i].Options
		if answer.AnswerIndex < 0 || answer.AnswerIndex >= len(options) {
			return AssessmentResult{}, utils.ErrInvalidAnswer
		}
		total += options[answer.AnswerIndex].Value
	}
	total *= def.ScoreMultiplier

	severity := BandSeverity(def, total)

	return AssessmentResult{
		Score:          total,
		MaxScore:       def.MaxScore,
		Severity:       severity,
		Interpretation: Interpret(def, severity, practiceName),
	}, nil
}

// BandSeverity selects the highest band whose threshold the score meets
// or exceeds; below the lowest threshold is the baseline normal band.
func BandSeverity(def *quizbank.QuizDefinition, score int) quizbank.Severity {
	severity := quizbank.SeverityNormal
	for _, threshold := range def.Thresholds {
		if score >= threshold.MinScore {
			severity = threshold.Severity
		}
	}
	return severity
}

func Interpret(def *quizbank.QuizDefinition, severity quizbank.Severity, practiceName string) string {
	text := def.Interpretations[severity]
	if practiceName == "" {
		practiceName = defaultPracticeName
	}
	return strings.ReplaceAll(text, "{practice}", practiceName)
}
