package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"talentlink/shortlist-engine/internal/repositories"
	"talentlink/shortlist-engine/internal/services"
)

// poolCap bounds how many pre-filtered candidates one match query scores.
const poolCap = 200

type MatchHandler struct {
	matcher       services.KeywordMatcherService
	candidateRepo repositories.CandidateRepository
}

func NewMatchHandler(
	matcher services.KeywordMatcherService,
	candidateRepo repositories.CandidateRepository,
) *MatchHandler {
	return &MatchHandler{
		matcher:       matcher,
		candidateRepo: candidateRepo,
	}
}

// HandleMatch handles GET /candidates/match?q=...&limit=...
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required",
		})
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	candidates, err := h.candidateRepo.SearchByTerms(h.matcher.QueryTerms(query), poolCap)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search candidates",
		})
	}

	results := h.matcher.MatchByKeyword(query, limit, candidates)
	return c.JSON(fiber.Map{
		"query":   query,
		"total":   len(results),
		"results": results,
	})
}
