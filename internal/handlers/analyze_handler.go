package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"skillscan/resume-analyzer/internal/models"
	"skillscan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /api/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume text provided",
		})
	}

	skills, err := h.analyzer.ExtractResumeSkills(c.UserContext(), req.ResumeText)
	if err != nil {
		return analysisError(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		Skills: services.JoinSkillList(skills),
	})
}

// HandleAnalyzeJobRole handles POST /api/analyze-job-role
func (h *AnalyzeHandler) HandleAnalyzeJobRole(c *fiber.Ctx) error {
	var req models.AnalyzeJobRoleRequest

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

	skills, err := h.analyzer.ExtractJobRoleSkills(c.UserContext(), req.JobRole)
	if err != nil {
		return analysisError(c, err)
	}

	return c.JSON(models.AnalyzeJobRoleResponse{
		RequiredSkills: services.JoinSkillList(skills),
	})
}

// HandleAnalyzeCompatibility handles POST /api/analyze-compatibility
func (h *AnalyzeHandler) HandleAnalyzeCompatibility(c *fiber.Ctx) error {
	var req models.CompatibilityRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeSkills == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume skills provided",
		})
	}

	if req.RequiredSkills == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No required skills provided",
		})
	}

	result, err := h.analyzer.AnalyzeCompatibility(c.UserContext(), req.ResumeSkills, req.RequiredSkills)
	if err != nil {
		log.Printf("❌ Compatibility analysis failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "AI compatibility analysis failed",
		})
	}

	return c.JSON(result)
}

// analysisError maps orchestration failures onto the uniform 500
// response. The error detail is logged, never returned to the caller.
func analysisError(c *fiber.Ctx, err error) error {
	log.Printf("❌ Analysis failed: %v\n", err)

	message := "AI request failed"
	if errors.Is(err, services.ErrFormat) {
		message = "AI response format invalid"
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}
