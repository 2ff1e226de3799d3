package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlink/shortlist-engine/internal/models"
	"talentlink/shortlist-engine/internal/repositories"
	"talentlink/shortlist-engine/internal/services"
)

type stubShortlistService struct {
	response   *models.ShortlistingResponse
	err        error
	evaluation *models.AIEvaluationResult
}

func (s *stubShortlistService) GenerateShortlist(context.Context, uuid.UUID, int) (*models.ShortlistingResponse, error) {
	return s.response, s.err
}

func (s *stubShortlistService) EvaluateCandidate(context.Context, *models.ProjectRequirements, *models.CandidateProfile) *models.AIEvaluationResult {
	return s.evaluation
}

type stubProjectRepo struct {
	project *models.ProjectRequirements
}

func (s *stubProjectRepo) FindByID(id uuid.UUID) (*models.ProjectRequirements, error) {
	if s.project != nil && s.project.ID == id {
		return s.project, nil
	}
	return nil, repositories.ErrProjectNotFound
}

func (s *stubProjectRepo) Create(*models.ProjectRequirements) error { return nil }

type stubCandidateRepo struct {
	candidate  *models.CandidateProfile
	searchPool []models.CandidateProfile
}

func (s *stubCandidateRepo) Create(*models.CandidateProfile) error { return nil }

func (s *stubCandidateRepo) FindByID(id uuid.UUID) (*models.CandidateProfile, error) {
	if s.candidate != nil && s.candidate.ID == id {
		return s.candidate, nil
	}
	return nil, repositories.ErrCandidateNotFound
}

func (s *stubCandidateRepo) SearchByTerms([]string, int) ([]models.CandidateProfile, error) {
	return s.searchPool, nil
}

func newShortlistApp(svc services.ShortlistService, projectRepo repositories.ProjectRepository, candidateRepo repositories.CandidateRepository) *fiber.App {
	app := fiber.New()
	handler := NewShortlistHandler(svc, projectRepo, candidateRepo)
	app.Post("/projects/:id/shortlist", handler.HandleGenerateShortlist)
	app.Post("/projects/:id/candidates/:candidateId/evaluate", handler.HandleEvaluateCandidate)
	return app
}

func TestHandleGenerateShortlistOK(t *testing.T) {
	projectID := uuid.New()
	svc := &stubShortlistService{response: &models.ShortlistingResponse{
		TotalCandidates:     3,
		EvaluatedCandidates: 3,
		AIModel:             "stub-model",
	}}
	app := newShortlistApp(svc, &stubProjectRepo{}, &stubCandidateRepo{})

	req := httptest.NewRequest("POST", "/projects/"+projectID.String()+"/shortlist", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.ShortlistingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.TotalCandidates)
	assert.Equal(t, "stub-model", body.AIModel)
}

func TestHandleGenerateShortlistInvalidID(t *testing.T) {
	app := newShortlistApp(&stubShortlistService{}, &stubProjectRepo{}, &stubCandidateRepo{})

	req := httptest.NewRequest("POST", "/projects/not-a-uuid/shortlist", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleGenerateShortlistProjectNotFound(t *testing.T) {
	svc := &stubShortlistService{err: repositories.ErrProjectNotFound}
	app := newShortlistApp(svc, &stubProjectRepo{}, &stubCandidateRepo{})

	req := httptest.NewRequest("POST", "/projects/"+uuid.NewString()+"/shortlist", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleGenerateShortlistNoApplications(t *testing.T) {
	svc := &stubShortlistService{err: services.ErrNoApplications}
	app := newShortlistApp(svc, &stubProjectRepo{}, &stubCandidateRepo{})

	req := httptest.NewRequest("POST", "/projects/"+uuid.NewString()+"/shortlist", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleEvaluateCandidateOK(t *testing.T) {
	project := &models.ProjectRequirements{ID: uuid.New(), Title: "Gig"}
	candidate := &models.CandidateProfile{ID: uuid.New(), Name: "Amira"}
	svc := &stubShortlistService{evaluation: &models.AIEvaluationResult{
		CandidateID:  candidate.ID,
		OverallScore: 82,
	}}
	app := newShortlistApp(svc, &stubProjectRepo{project: project}, &stubCandidateRepo{candidate: candidate})

	req := httptest.NewRequest("POST", "/projects/"+project.ID.String()+"/candidates/"+candidate.ID.String()+"/evaluate", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.AIEvaluationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 82, body.OverallScore)
}

func TestHandleEvaluateCandidateNotFound(t *testing.T) {
	project := &models.ProjectRequirements{ID: uuid.New(), Title: "Gig"}
	app := newShortlistApp(&stubShortlistService{}, &stubProjectRepo{project: project}, &stubCandidateRepo{})

	req := httptest.NewRequest("POST", "/projects/"+project.ID.String()+"/candidates/"+uuid.NewString()+"/evaluate", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
