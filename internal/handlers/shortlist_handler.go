package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentlink/shortlist-engine/internal/repositories"
	"talentlink/shortlist-engine/internal/services"
)

type ShortlistHandler struct {
	shortlistService services.ShortlistService
	projectRepo      repositories.ProjectRepository
	candidateRepo    repositories.CandidateRepository
}

func NewShortlistHandler(
	shortlistService services.ShortlistService,
	projectRepo repositories.ProjectRepository,
	candidateRepo repositories.CandidateRepository,
) *ShortlistHandler {
	return &ShortlistHandler{
		shortlistService: shortlistService,
		projectRepo:      projectRepo,
		candidateRepo:    candidateRepo,
	}
}

type shortlistRequest struct {
	MaxCandidates int `json:"max_candidates"`
}

// HandleGenerateShortlist handles POST /projects/:id/shortlist
func (h *ShortlistHandler) HandleGenerateShortlist(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project id format",
		})
	}

	var req shortlistRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	response, err := h.shortlistService.GenerateShortlist(c.UserContext(), projectID, req.MaxCandidates)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Project not found",
			})
		case errors.Is(err, services.ErrNoApplications):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "No applications for this project",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate shortlist",
			})
		}
	}

	return c.JSON(response)
}

// HandleEvaluateCandidate handles POST /projects/:id/candidates/:candidateId/evaluate
func (h *ShortlistHandler) HandleEvaluateCandidate(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid project id format",
		})
	}

	candidateID, err := uuid.Parse(c.Params("candidateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate id format",
		})
	}

	project, err := h.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Project not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load project",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Candidate not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load candidate",
		})
	}

	evaluation := h.shortlistService.EvaluateCandidate(c.UserContext(), project, candidate)
	return c.JSON(evaluation)
}
