package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillscan/resume-analyzer/internal/handlers"
	"skillscan/resume-analyzer/internal/models"
	"skillscan/resume-analyzer/internal/services"
)

type fakeAnalyzer struct {
	resumeSkills  []string
	roleSkills    []string
	compatibility *models.CompatibilityResult
	questions     []models.QuizQuestion
	err           error

	analysisDelay time.Duration
}

func (f *fakeAnalyzer) ExtractResumeSkills(context.Context, string) ([]string, error) {
	return f.resumeSkills, f.err
}

func (f *fakeAnalyzer) ExtractJobRoleSkills(context.Context, string) ([]string, error) {
	return f.roleSkills, f.err
}

func (f *fakeAnalyzer) AnalyzeCompatibility(context.Context, string, string) (*models.CompatibilityResult, error) {
	if f.analysisDelay > 0 {
		time.Sleep(f.analysisDelay)
	}
	return f.compatibility, f.err
}

func (f *fakeAnalyzer) GenerateQuestions(context.Context, string) ([]models.QuizQuestion, error) {
	return f.questions, f.err
}

func newApp(analyzer services.AnalyzerService, joinWait time.Duration) (*fiber.App, services.SessionStore) {
	sessions := services.NewSessionStore(time.Minute)

	analyzeHandler := handlers.NewAnalyzeHandler(analyzer)
	quizHandler := handlers.NewQuizHandler(analyzer, sessions, joinWait)
	extractHandler := handlers.NewExtractHandler(services.NewPDFParserService())

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/extract", extractHandler.HandleExtract)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/analyze-job-role", analyzeHandler.HandleAnalyzeJobRole)
	api.Post("/analyze-compatibility", analyzeHandler.HandleAnalyzeCompatibility)
	api.Post("/generate-questions", quizHandler.HandleGenerateQuestions)
	api.Post("/advanced-analyze", quizHandler.HandleAdvancedAnalyze)
	api.Post("/submit-quiz", quizHandler.HandleSubmitQuiz)

	return app, sessions
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target))
}

func TestHandleAnalyze_MissingResumeText(t *testing.T) {
	t.Parallel()

	app, _ := newApp(&fakeAnalyzer{}, time.Second)
	resp := postJSON(t, app, "/api/analyze", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze_ReturnsJoinedSkills(t *testing.T) {
	t.Parallel()

	app, _ := newApp(&fakeAnalyzer{resumeSkills: []string{"Python", "SQL"}}, time.Second)
	resp := postJSON(t, app, "/api/analyze", models.AnalyzeRequest{ResumeText: "Skills: Python, SQL"})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.AnalyzeResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Python, SQL", body.Skills)
}

func TestHandleAnalyze_GatewayFailure(t *testing.T) {
	t.Parallel()

	app, _ := newApp(&fakeAnalyzer{err: services.ErrTransport}, time.Second)
	resp := postJSON(t, app, "/api/analyze", models.AnalyzeRequest{ResumeText: "x"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandleAnalyzeJobRole_MissingField(t *testing.T) {
	t.Parallel()

	app, _ := newApp(&fakeAnalyzer{}, time.Second)
	resp := postJSON(t, app, "/api/analyze-job-role", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeCompatibility_Success(t *testing.T) {
	t.Parallel()

	want := &models.CompatibilityResult{
		Score:         72,
		Compatibility: "Good",
		MissingSkills: []string{"Docker"},
		Suggestion:    "Learn Docker.",
	}
	app, _ := newApp(&fakeAnalyzer{compatibility: want}, time.Second)
	resp := postJSON(t, app, "/api/analyze-compatibility", models.CompatibilityRequest{
		ResumeSkills:   "Python, SQL",
		RequiredSkills: "Python, SQL, Docker",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.CompatibilityResult
	decodeBody(t, resp, &body)
	assert.Equal(t, *want, body)
}

func TestHandleGenerateQuestions_Failure(t *testing.T) {
	t.Parallel()

	app, _ := newApp(&fakeAnalyzer{err: errors.New("upstream down")}, time.Second)
	resp := postJSON(t, app, "/api/generate-questions", models.GenerateQuestionsRequest{JobRole: "DevOps"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAdvancedFlow_SubmitBlendsScores(t *testing.T) {
	t.Parallel()

	analyzer := &fakeAnalyzer{
		compatibility: &models.CompatibilityResult{
			Score:         80,
			Compatibility: "Good",
			MissingSkills: []string{"Docker"},
			Suggestion:    "Learn Docker.",
		},
		questions: []models.QuizQuestion{
			{Question: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
			{Question: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
		},
	}
	app, _ := newApp(analyzer, time.Second)

	resp := postJSON(t, app, "/api/advanced-analyze", models.AdvancedAnalyzeRequest{
		ResumeSkills:   "Python",
		RequiredSkills: "Python, Docker",
		JobRole:        "Backend Developer",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var started models.AdvancedAnalyzeResponse
	decodeBody(t, resp, &started)
	require.NotEmpty(t, started.SessionID)
	require.Len(t, started.Questions, 2)

	// One of two correct: quiz percentage 50, blended with AI score 80.
	resp = postJSON(t, app, "/api/submit-quiz", models.SubmitQuizRequest{
		SessionID: started.SessionID,
		Answers:   []string{"a", "c"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var final models.FinalResult
	decodeBody(t, resp, &final)
	assert.Equal(t, 65, final.Score)
	assert.Equal(t, 50, final.QuizScore)
	assert.Contains(t, final.Compatibility, "80")
	assert.Contains(t, final.Compatibility, "50")
	assert.Equal(t, []string{"Docker"}, final.MissingSkills)

	// Session is consumed by a successful submit.
	resp = postJSON(t, app, "/api/submit-quiz", models.SubmitQuizRequest{
		SessionID: started.SessionID,
		Answers:   []string{"a", "c"},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitQuiz_AnalysisStillRunning(t *testing.T) {
	t.Parallel()

	analyzer := &fakeAnalyzer{
		compatibility: &models.CompatibilityResult{Score: 80},
		questions: []models.QuizQuestion{
			{Question: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		},
		analysisDelay: 2 * time.Second,
	}
	app, _ := newApp(analyzer, 20*time.Millisecond)

	resp := postJSON(t, app, "/api/advanced-analyze", models.AdvancedAnalyzeRequest{
		ResumeSkills:   "Python",
		RequiredSkills: "Python",
		JobRole:        "role",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var started models.AdvancedAnalyzeResponse
	decodeBody(t, resp, &started)

	resp = postJSON(t, app, "/api/submit-quiz", models.SubmitQuizRequest{
		SessionID: started.SessionID,
		Answers:   []string{"a"},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitQuiz_UnknownSession(t *testing.T) {
	t.Parallel()

	app, _ := newApp(&fakeAnalyzer{}, time.Second)
	resp := postJSON(t, app, "/api/submit-quiz", models.SubmitQuizRequest{
		SessionID: "7b3d57b1-4bb1-4cf3-9053-a1f78a62e222",
		Answers:   []string{"a"},
	})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitQuiz_BadSessionID(t *testing.T) {
	t.Parallel()

	app, _ := newApp(&fakeAnalyzer{}, time.Second)
	resp := postJSON(t, app, "/api/submit-quiz", models.SubmitQuizRequest{
		SessionID: "not-a-uuid",
		Answers:   []string{"a"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExtract_NoFile(t *testing.T) {
	t.Parallel()

	app, _ := newApp(&fakeAnalyzer{}, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(""))
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExtract_RejectsNonPDF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.docx")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a pdf"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	app, _ := newApp(&fakeAnalyzer{}, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/extract", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExtract_CorruptPDF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 garbage"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	app, _ := newApp(&fakeAnalyzer{}, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/extract", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
