package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"talentlink/shortlist-engine/internal/config"
	"talentlink/shortlist-engine/internal/models"
	"talentlink/shortlist-engine/internal/repositories"
)

// ErrNoApplications is returned when a valid project has no applicants.
// Like repositories.ErrProjectNotFound it aborts the whole request; every
// other failure degrades to a per-candidate fallback evaluation.
var ErrNoApplications = errors.New("no applications for project")

type ShortlistService interface {
	// GenerateShortlist evaluates every applicant to the project and
	// returns the top maxCandidates by score. maxCandidates <= 0 uses the
	// configured default.
	GenerateShortlist(ctx context.Context, projectID uuid.UUID, maxCandidates int) (*models.ShortlistingResponse, error)
	// EvaluateCandidate runs the evaluation chain for a single candidate.
	// It never fails: any failure in the chain yields a fallback evaluation.
	EvaluateCandidate(ctx context.Context, project *models.ProjectRequirements, candidate *models.CandidateProfile) *models.AIEvaluationResult
}

type shortlistService struct {
	projectRepo     repositories.ProjectRepository
	applicationRepo repositories.ApplicationRepository
	reasoning       ReasoningService
	promptBuilder   *PromptBuilder
	fallback        *FallbackScorer
	cfg             config.ShortlistConfig
}

func NewShortlistService(
	projectRepo repositories.ProjectRepository,
	applicationRepo repositories.ApplicationRepository,
	reasoning ReasoningService,
	cfg config.ShortlistConfig,
) ShortlistService {
	return &shortlistService{
		projectRepo:     projectRepo,
		applicationRepo: applicationRepo,
		reasoning:       reasoning,
		promptBuilder:   NewPromptBuilder(),
		fallback:        NewFallbackScorer(),
		cfg:             cfg,
	}
}

// GenerateShortlist implements ShortlistService.
func (s *shortlistService) GenerateShortlist(ctx context.Context, projectID uuid.UUID, maxCandidates int) (*models.ShortlistingResponse, error) {
	start := time.Now()

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.applicationRepo.FindCandidatesByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load applicants: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoApplications
	}

	if maxCandidates <= 0 {
		maxCandidates = s.cfg.MaxCandidates
	}

	log.Printf("🔄 Shortlisting project %s: %d candidates, top %d requested\n", projectID, len(candidates), maxCandidates)

	evaluations := s.evaluateAll(ctx, project, candidates)
	shortlisted, topEvaluations := s.rankAndSelect(candidates, evaluations, maxCandidates)

	log.Printf("✅ Shortlist ready for project %s: %d of %d candidates in %s\n",
		projectID, len(shortlisted), len(candidates), time.Since(start))

	return &models.ShortlistingResponse{
		TotalCandidates:       len(candidates),
		EvaluatedCandidates:   len(evaluations),
		ShortlistedCandidates: shortlisted,
		Evaluations:           topEvaluations,
		ProcessingTime:        time.Since(start),
		AIModel:               s.reasoning.Model(),
		GeneratedAt:           time.Now(),
	}, nil
}

// EvaluateCandidate implements ShortlistService.
func (s *shortlistService) EvaluateCandidate(ctx context.Context, project *models.ProjectRequirements, candidate *models.CandidateProfile) *models.AIEvaluationResult {
	prompt := s.promptBuilder.BuildEvaluationPrompt(project, candidate)

	content, err := s.reasoning.GenerateEvaluation(ctx, s.promptBuilder.SystemPrompt(), prompt)
	if err != nil {
		if !errors.Is(err, ErrNotConfigured) {
			log.Printf("⚠️ Falling back for candidate %s: %v\n", candidate.ID, err)
		}
		return s.fallback.Evaluate(candidate)
	}

	result, err := ParseEvaluation(content, candidate.ID)
	if err != nil {
		log.Printf("⚠️ Falling back for candidate %s: %v\n", candidate.ID, err)
		return s.fallback.Evaluate(candidate)
	}

	return result
}

// evaluateAll walks the pool in fixed-size batches, evaluating each batch
// concurrently. Results are placed by index so the output always matches
// the input order regardless of completion order, and one candidate's
// failure never touches its siblings.
func (s *shortlistService) evaluateAll(ctx context.Context, project *models.ProjectRequirements, candidates []models.CandidateProfile) []models.AIEvaluationResult {
	results := make([]models.AIEvaluationResult, len(candidates))

	batchSize := s.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 5
	}

	for start := 0; start < len(candidates); start += batchSize {
		end := min(start+batchSize, len(candidates))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = *s.EvaluateCandidate(ctx, project, &candidates[idx])
			}(i)
		}
		wg.Wait()

		// Pause between batches to respect the reasoning API's rate
		// limits. Not after the final batch.
		if end < len(candidates) {
			select {
			case <-time.After(s.cfg.BatchDelay):
			case <-ctx.Done():
			}
		}
	}

	return results
}

// rankAndSelect sorts evaluations by score, descending and stable: tied
// candidates keep their original application order. The returned profile
// list corresponds position-by-position to the returned evaluations.
func (s *shortlistService) rankAndSelect(candidates []models.CandidateProfile, evaluations []models.AIEvaluationResult, maxCandidates int) ([]models.CandidateProfile, []models.AIEvaluationResult) {
	ranked := make([]models.AIEvaluationResult, len(evaluations))
	copy(ranked, evaluations)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	limit := min(maxCandidates, len(ranked))
	ranked = ranked[:limit]

	byID := make(map[uuid.UUID]models.CandidateProfile, len(candidates))
	for _, candidate := range candidates {
		byID[candidate.ID] = candidate
	}

	shortlisted := make([]models.CandidateProfile, 0, len(ranked))
	for _, evaluation := range ranked {
		shortlisted = append(shortlisted, byID[evaluation.CandidateID])
	}

	return shortlisted, ranked
}
