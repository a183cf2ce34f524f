package handlers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"skillscan/resume-analyzer/internal/models"
	"skillscan/resume-analyzer/internal/services"
)

type ExtractHandler struct {
	pdfParser services.PDFParserService
}

func NewExtractHandler(pdfParser services.PDFParserService) *ExtractHandler {
	return &ExtractHandler{
		pdfParser: pdfParser,
	}
}

// HandleExtract handles POST /api/extract
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF files allowed",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	buffer, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	if len(buffer) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Empty file buffer received",
		})
	}

	text, err := h.pdfParser.ExtractText(buffer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to extract text from PDF: " + err.Error(),
		})
	}

	return c.JSON(models.ExtractResponse{Text: text})
}
