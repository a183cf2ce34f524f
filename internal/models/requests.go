package models

type ExtractResponse struct {
	Text string `json:"text"`
}

type AnalyzeRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
}

type AnalyzeResponse struct {
	Skills string `json:"skills"`
}

type AnalyzeJobRoleRequest struct {
	JobRole string `json:"jobRole" validate:"required"`
}

type AnalyzeJobRoleResponse struct {
	RequiredSkills string `json:"requiredSkills"`
}

type CompatibilityRequest struct {
	ResumeSkills   string `json:"resumeSkills" validate:"required"`
	RequiredSkills string `json:"requiredSkills" validate:"required"`
}

type GenerateQuestionsRequest struct {
	JobRole string `json:"jobRole" validate:"required"`
}

type GenerateQuestionsResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

type AdvancedAnalyzeRequest struct {
	ResumeSkills   string `json:"resumeSkills" validate:"required"`
	RequiredSkills string `json:"requiredSkills" validate:"required"`
	JobRole        string `json:"jobRole" validate:"required"`
}

type AdvancedAnalyzeResponse struct {
	SessionID string         `json:"sessionId"`
	Questions []QuizQuestion `json:"questions"`
}

type SubmitQuizRequest struct {
	SessionID string   `json:"sessionId" validate:"required,uuid"`
	Answers   []string `json:"answers" validate:"required"`
}
