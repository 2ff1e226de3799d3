package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlink/shortlist-engine/internal/models"
	"talentlink/shortlist-engine/internal/services"
)

func newMatchApp(candidateRepo *stubCandidateRepo) *fiber.App {
	app := fiber.New()
	handler := NewMatchHandler(services.NewKeywordMatcherService(), candidateRepo)
	app.Get("/candidates/match", handler.HandleMatch)
	return app
}

func TestHandleMatchRequiresQuery(t *testing.T) {
	app := newMatchApp(&stubCandidateRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/candidates/match", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleMatchRejectsBadLimit(t *testing.T) {
	app := newMatchApp(&stubCandidateRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/candidates/match?q=python&limit=zero", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleMatchReturnsRankedResults(t *testing.T) {
	repo := &stubCandidateRepo{searchPool: []models.CandidateProfile{
		{ID: uuid.New(), Name: "Amira", Location: "Dubai", Skills: pq.StringArray{"Python", "React"}},
		{ID: uuid.New(), Name: "Priya", Bio: "learning python"},
	}}
	app := newMatchApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/candidates/match?q=python+developer+in+dubai", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Query   string               `json:"query"`
		Total   int                  `json:"total"`
		Results []models.MatchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Equal(t, 2, body.Total)
	assert.Equal(t, "Amira", body.Results[0].Candidate.Name)
	assert.Equal(t, 35, body.Results[0].MatchScore)
	assert.Contains(t, body.Results[0].MatchReasons, "Located in Dubai")
	assert.Equal(t, "Priya", body.Results[1].Candidate.Name)
	assert.Equal(t, 5, body.Results[1].MatchScore)
}
