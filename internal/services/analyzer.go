package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"skillscan/resume-analyzer/internal/config"
	"skillscan/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	ExtractResumeSkills(ctx context.Context, resumeText string) ([]string, error)
	ExtractJobRoleSkills(ctx context.Context, jobRole string) ([]string, error)
	AnalyzeCompatibility(ctx context.Context, resumeSkills, requiredSkills string) (*models.CompatibilityResult, error)
	GenerateQuestions(ctx context.Context, jobRole string) ([]models.QuizQuestion, error)
}

type analyzerService struct {
	llm           LLMService
	promptBuilder *PromptBuilder
	cfg           config.AnalysisConfig
}

func NewAnalyzerService(llm LLMService, cfg config.AnalysisConfig) AnalyzerService {
	return &analyzerService{
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		cfg:           cfg,
	}
}

// ExtractResumeSkills isolates the skills section of the resume, asks
// the model for a comma-separated skill list, and normalizes the reply.
// An empty reply yields an empty list rather than an error so the
// caller can still render a result.
func (a *analyzerService) ExtractResumeSkills(ctx context.Context, resumeText string) ([]string, error) {
	skillsText := ExtractSkillsSection(resumeText)

	// Prompts stay small: only the first MaxResumeChars characters of
	// the segment are sent, with no summarization.
	if len(skillsText) > a.cfg.MaxResumeChars {
		skillsText = skillsText[:a.cfg.MaxResumeChars]
	}

	prompt := a.promptBuilder.BuildResumeSkillsPrompt(skillsText)

	result, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume skills: %w", err)
	}

	return NormalizeSkillList(result), nil
}

// ExtractJobRoleSkills asks the model for the core skills a role
// requires, capped at MaxRoleSkills entries.
func (a *analyzerService) ExtractJobRoleSkills(ctx context.Context, jobRole string) ([]string, error) {
	prompt := a.promptBuilder.BuildJobRoleSkillsPrompt(jobRole)

	result, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job role skills: %w", err)
	}

	return CapSkillList(NormalizeSkillList(result), a.cfg.MaxRoleSkills), nil
}

// AnalyzeCompatibility compares resume skills against required skills
// and returns the model's verdict.
func (a *analyzerService) AnalyzeCompatibility(ctx context.Context, resumeSkills, requiredSkills string) (*models.CompatibilityResult, error) {
	prompt := a.promptBuilder.BuildCompatibilityPrompt(resumeSkills, requiredSkills)

	response, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze compatibility: %w", err)
	}

	var result models.CompatibilityResult
	if err := json.Unmarshal([]byte(extractJSONObject(response)), &result); err != nil {
		log.Printf("❌ AI JSON parsing failed: %s\n", response)
		return nil, ErrFormat
	}

	if result.MissingSkills == nil {
		result.MissingSkills = []string{}
	}

	return &result, nil
}

// GenerateQuestions generates the multiple-choice quiz for a role.
// Questions that fail shape validation are dropped; if nothing valid
// survives, the whole reply is treated as malformed.
func (a *analyzerService) GenerateQuestions(ctx context.Context, jobRole string) ([]models.QuizQuestion, error) {
	prompt := a.promptBuilder.BuildQuizPrompt(jobRole)

	response, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	var raw []models.QuizQuestion
	if err := json.Unmarshal([]byte(extractJSONArray(response)), &raw); err != nil {
		log.Printf("❌ AI JSON parsing failed for questions: %s\n", response)
		return nil, ErrFormat
	}

	questions := make([]models.QuizQuestion, 0, len(raw))
	for i, q := range raw {
		if err := validateQuestion(q); err != nil {
			log.Printf("⚠️  Dropping malformed question %d: %v\n", i+1, err)
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		log.Printf("❌ No valid questions in AI reply: %s\n", response)
		return nil, ErrFormat
	}

	return questions, nil
}

func validateQuestion(q models.QuizQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("empty answer")
	}
	return nil
}

// extractJSONObject slices the first {...last} span out of text that may
// wrap the JSON in prose or markdown fences.
func extractJSONObject(text string) string {
	text = stripFences(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

// extractJSONArray is the array counterpart, slicing first [ to last ].
func extractJSONArray(text string) string {
	text = stripFences(text)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	return strings.ReplaceAll(text, "```", "")
}
