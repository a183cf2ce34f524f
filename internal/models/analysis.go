package models

// CompatibilityResult is the verdict returned by the AI for a
// resume-skills / required-skills pair. Shape mirrors the JSON the
// prompt asks the model to produce.
type CompatibilityResult struct {
	Score         int      `json:"score"`
	Compatibility string   `json:"compatibility"`
	MissingSkills []string `json:"missingSkills"`
	Suggestion    string   `json:"suggestion"`
}

// FinalResult is a CompatibilityResult whose score has been blended
// with a quiz percentage. MissingSkills and Suggestion carry over
// unchanged from the prior result.
type FinalResult struct {
	CompatibilityResult
	QuizScore int `json:"quizScore"`
}
