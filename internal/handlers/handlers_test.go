package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-compass/internal/models"
)

type fakePipeline struct {
	analyzeScores map[string]int
	quizResp      *models.SubmitQuizResponse
	progressResp  *models.CheckProgressResponse
	err           error

	lastUserID  string
	lastRatings []int
}

func (p *fakePipeline) AnalyzeResume(_ context.Context, userID, _ string) (map[string]int, error) {
	p.lastUserID = userID
	return p.analyzeScores, p.err
}

func (p *fakePipeline) SubmitQuiz(_ context.Context, userID string, ratings []int) (*models.SubmitQuizResponse, error) {
	p.lastUserID = userID
	p.lastRatings = ratings
	return p.quizResp, p.err
}

func (p *fakePipeline) CheckProgress(_ context.Context, userID string) (*models.CheckProgressResponse, error) {
	p.lastUserID = userID
	return p.progressResp, p.err
}

type fakeJobSearch struct {
	jobs        []models.JobListing
	err         error
	lastKeyword string
}

func (s *fakeJobSearch) SearchJobs(_ context.Context, keyword string) ([]models.JobListing, error) {
	s.lastKeyword = keyword
	return s.jobs, s.err
}

type fakeStorage struct {
	path        string
	saveErr     error
	saveCalls   int
	deleteCalls int
}

func (s *fakeStorage) SaveResume(*multipart.FileHeader, string) (string, error) {
	s.saveCalls++
	return s.path, s.saveErr
}

func (s *fakeStorage) DeleteFile(string) error {
	s.deleteCalls++
	return nil
}

func (s *fakeStorage) EnsureUploadDir() error {
	return nil
}

type fakePDFParser struct {
	text string
	err  error
}

func (p *fakePDFParser) ExtractText(string) (string, error) {
	return p.text, p.err
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleSubmitQuiz(t *testing.T) {
	pipeline := &fakePipeline{quizResp: &models.SubmitQuizResponse{
		PredictedRole: "Software Developer",
		NicheRoles:    []string{"a", "b", "c", "d", "e"},
	}}

	app := fiber.New()
	app.Post("/quiz", NewQuizHandler(pipeline).HandleSubmitQuiz)

	req := jsonRequest(t, http.MethodPost, "/quiz", models.SubmitQuizRequest{
		UserID:  "user-1",
		Ratings: []int{3, 3, 3},
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-1", pipeline.lastUserID)
	assert.Equal(t, []int{3, 3, 3}, pipeline.lastRatings)

	var result models.SubmitQuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Software Developer", result.PredictedRole)
	assert.Len(t, result.NicheRoles, 5)
}

func TestHandleSubmitQuizValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/quiz", NewQuizHandler(&fakePipeline{}).HandleSubmitQuiz)

	cases := map[string]interface{}{
		"missing user id": models.SubmitQuizRequest{Ratings: []int{3}},
		"missing ratings": models.SubmitQuizRequest{UserID: "user-1"},
	}

	for name, payload := range cases {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/quiz", payload))
		require.NoError(t, err, name)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
	}
}

func TestHandleCheckProgress(t *testing.T) {
	role := "Software Developer"
	pipeline := &fakePipeline{progressResp: &models.CheckProgressResponse{
		NextStep:      models.StepResult,
		PredictedRole: &role,
	}}

	app := fiber.New()
	app.Get("/check", NewCheckHandler(pipeline).HandleCheckProgress)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/check?user_id=user-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-1", pipeline.lastUserID)

	var progress models.CheckProgressResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&progress))
	assert.Equal(t, models.StepResult, progress.NextStep)
	require.NotNil(t, progress.PredictedRole)
	assert.Equal(t, role, *progress.PredictedRole)
}

func TestHandleCheckProgressRequiresUserID(t *testing.T) {
	app := fiber.New()
	app.Get("/check", NewCheckHandler(&fakePipeline{}).HandleCheckProgress)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/check", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleSearchJobs(t *testing.T) {
	search := &fakeJobSearch{jobs: []models.JobListing{{
		ID:    "1",
		Title: "Backend Developer",
	}}}

	app := fiber.New()
	app.Get("/jobs", NewJobsHandler(search).HandleSearchJobs)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs?keywords=Backend+Developer", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Backend Developer", search.lastKeyword)

	var result models.JobSearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "Backend Developer", result.Jobs[0].Title)
}

func TestHandleSearchJobsRequiresKeywords(t *testing.T) {
	app := fiber.New()
	app.Get("/jobs", NewJobsHandler(&fakeJobSearch{}).HandleSearchJobs)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeResumeJSONBody(t *testing.T) {
	pipeline := &fakePipeline{analyzeScores: map[string]int{"Networking": 4}}

	app := fiber.New()
	handler := NewResumeHandler(pipeline, nil, nil, 1024*1024)
	app.Post("/resume", handler.HandleAnalyzeResume)

	req := jsonRequest(t, http.MethodPost, "/resume", models.AnalyzeResumeRequest{
		UserID:     "user-1",
		ResumeText: "years of   networking\nexperience",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-1", pipeline.lastUserID)

	var result models.AnalyzeResumeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 4, result.TechnicalScores["Networking"])
	assert.Equal(t, models.StepQuiz, result.NextStep)
}

func multipartResumeRequest(t *testing.T, userID string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if userID != "" {
		require.NoError(t, writer.WriteField("user_id", userID))
	}
	part, err := writer.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake content"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleAnalyzeResumeMultipartUpload(t *testing.T) {
	pipeline := &fakePipeline{analyzeScores: map[string]int{"Networking": 4}}
	storage := &fakeStorage{path: "/uploads/resume_user-1.pdf"}
	parser := &fakePDFParser{text: "extracted resume text"}

	app := fiber.New()
	app.Post("/resume", NewResumeHandler(pipeline, storage, parser, 1024*1024).HandleAnalyzeResume)

	resp, err := app.Test(multipartResumeRequest(t, "user-1"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, storage.saveCalls)
	assert.Zero(t, storage.deleteCalls)
	assert.Equal(t, "user-1", pipeline.lastUserID)
}

func TestHandleAnalyzeResumeMultipartMissingUserIDStoresNothing(t *testing.T) {
	storage := &fakeStorage{path: "/uploads/resume.pdf"}

	app := fiber.New()
	handler := NewResumeHandler(&fakePipeline{}, storage, &fakePDFParser{text: "x"}, 1024*1024)
	app.Post("/resume", handler.HandleAnalyzeResume)

	resp, err := app.Test(multipartResumeRequest(t, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The upload was rejected before storage was touched, so there is no
	// orphaned file to clean up.
	assert.Zero(t, storage.saveCalls)
	assert.Zero(t, storage.deleteCalls)
}

func TestHandleAnalyzeResumeMultipartExtractFailureCleansUp(t *testing.T) {
	storage := &fakeStorage{path: "/uploads/resume.pdf"}
	parser := &fakePDFParser{err: errors.New("file is encrypted")}

	app := fiber.New()
	handler := NewResumeHandler(&fakePipeline{}, storage, parser, 1024*1024)
	app.Post("/resume", handler.HandleAnalyzeResume)

	resp, err := app.Test(multipartResumeRequest(t, "user-1"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 1, storage.saveCalls)
	assert.Equal(t, 1, storage.deleteCalls)
}

func TestHandleAnalyzeResumeValidation(t *testing.T) {
	app := fiber.New()
	handler := NewResumeHandler(&fakePipeline{}, nil, nil, 1024*1024)
	app.Post("/resume", handler.HandleAnalyzeResume)

	cases := map[string]interface{}{
		"missing user id": models.AnalyzeResumeRequest{ResumeText: "text"},
		"missing text":    models.AnalyzeResumeRequest{UserID: "user-1"},
	}

	for name, payload := range cases {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/resume", payload))
		require.NoError(t, err, name)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
	}
}
