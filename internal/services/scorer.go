package services

import (
	"fmt"
	"math"

	"skillscan/resume-analyzer/internal/models"
)

// ScoreQuiz grades submitted answers against the quiz and returns the
// percentage of correct answers, rounded. Answers are compared by exact
// string match; a missing or non-matching answer counts as wrong. An
// empty question set is an error so the percentage is always defined.
func ScoreQuiz(questions []models.QuizQuestion, answers []string) (int, error) {
	if len(questions) == 0 {
		return 0, fmt.Errorf("cannot score an empty quiz")
	}

	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.Answer {
			correct++
		}
	}

	return int(math.Round(float64(correct) / float64(len(questions)) * 100)), nil
}

// BlendScores combines a prior compatibility verdict with a quiz
// percentage into the final result: an even split between the AI score
// and the quiz score. MissingSkills and Suggestion carry over unchanged.
func BlendScores(prior *models.CompatibilityResult, quizPercentage int) *models.FinalResult {
	aiScore := prior.Score
	finalScore := int(math.Round(float64(aiScore)*0.5 + float64(quizPercentage)*0.5))

	return &models.FinalResult{
		CompatibilityResult: models.CompatibilityResult{
			Score: finalScore,
			Compatibility: fmt.Sprintf("Final Score: %d%% (AI Analysis: %d%% | Quiz: %d%%)",
				finalScore, aiScore, quizPercentage),
			MissingSkills: prior.MissingSkills,
			Suggestion:    prior.Suggestion,
		},
		QuizScore: quizPercentage,
	}
}
