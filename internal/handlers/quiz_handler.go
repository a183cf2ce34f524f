package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillscan/resume-analyzer/internal/models"
	"skillscan/resume-analyzer/internal/services"
)

type QuizHandler struct {
	analyzer services.AnalyzerService
	sessions services.SessionStore
	joinWait time.Duration
}

func NewQuizHandler(
	analyzer services.AnalyzerService,
	sessions services.SessionStore,
	joinWait time.Duration,
) *QuizHandler {
	return &QuizHandler{
		analyzer: analyzer,
		sessions: sessions,
		joinWait: joinWait,
	}
}

// HandleGenerateQuestions handles POST /api/generate-questions
func (h *QuizHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No job role provided",
		})
	}

	questions, err := h.analyzer.GenerateQuestions(c.UserContext(), req.JobRole)
	if err != nil {
		log.Printf("❌ Question generation failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate questions",
		})
	}

	return c.JSON(models.GenerateQuestionsResponse{Questions: questions})
}

// HandleAdvancedAnalyze handles POST /api/advanced-analyze.
//
// The compatibility analysis is launched in the background while the
// quiz is generated in the request goroutine, so both round-trips to the
// AI run concurrently. The analysis result is joined at quiz submission.
func (h *QuizHandler) HandleAdvancedAnalyze(c *fiber.Ctx) error {
	var req models.AdvancedAnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeSkills == "" || req.RequiredSkills == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume or required skills provided",
		})
	}

	if req.JobRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No job role provided",
		})
	}

	questions, err := h.analyzer.GenerateQuestions(c.UserContext(), req.JobRole)
	if err != nil {
		log.Printf("❌ Question generation failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate questions",
		})
	}

	session := h.sessions.Create(questions)

	// Detached from the request context: the analysis outlives this
	// request and is collected by HandleSubmitQuiz.
	go func(resumeSkills, requiredSkills string) {
		result, err := h.analyzer.AnalyzeCompatibility(context.Background(), resumeSkills, requiredSkills)
		if err != nil {
			log.Printf("❌ Background analysis for session %s failed: %v\n", session.ID, err)
		}
		session.Deliver(result, err)
	}(req.ResumeSkills, req.RequiredSkills)

	return c.JSON(models.AdvancedAnalyzeResponse{
		SessionID: session.ID.String(),
		Questions: questions,
	})
}

// HandleSubmitQuiz handles POST /api/submit-quiz. Scores the answers,
// joins the background compatibility analysis, and blends the two into
// the final result. A successful submit consumes the session.
func (h *QuizHandler) HandleSubmitQuiz(c *fiber.Ctx) error {
	var req models.SubmitQuizRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, ok := h.sessions.Get(sessionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Quiz session not found or expired",
		})
	}

	quizPercentage, err := services.ScoreQuiz(session.Questions, req.Answers)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot score quiz: " + err.Error(),
		})
	}

	analysis, err := session.Join(h.joinWait)
	if err != nil {
		if errors.Is(err, services.ErrAnalysisPending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Analysis is still running. Please try submitting again in a few seconds.",
			})
		}
		log.Printf("❌ Background analysis failed for session %s: %v\n", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "AI compatibility analysis failed",
		})
	}

	final := services.BlendScores(analysis, quizPercentage)
	h.sessions.Delete(sessionID)

	return c.JSON(final)
}
