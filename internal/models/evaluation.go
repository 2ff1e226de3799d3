package models

import (
	"time"

	"github.com/google/uuid"
)

type Recommendation string

const (
	StrongFit   Recommendation = "STRONG_FIT"
	GoodFit     Recommendation = "GOOD_FIT"
	ModerateFit Recommendation = "MODERATE_FIT"
	PoorFit     Recommendation = "POOR_FIT"
)

// KeyInsights are the four sub-scores accompanying an evaluation, each
// clamped to [0,100].
type KeyInsights struct {
	TechnicalFit    int `json:"technical_fit"`
	CulturalFit     int `json:"cultural_fit"`
	MotivationLevel int `json:"motivation_level"`
	GrowthPotential int `json:"growth_potential"`
}

// AIEvaluationResult is one candidate's evaluation, either produced by the
// reasoning service or synthesized by the fallback scorer. Scores are always
// clamped at construction time; raw upstream values are never trusted.
type AIEvaluationResult struct {
	CandidateID        uuid.UUID      `json:"candidate_id"`
	OverallScore       int            `json:"overall_score"`
	Confidence         int            `json:"confidence"`
	Reasoning          string         `json:"reasoning"`
	Strengths          []string       `json:"strengths"`
	Concerns           []string       `json:"concerns"`
	Recommendation     Recommendation `json:"recommendation"`
	KeyInsights        KeyInsights    `json:"key_insights"`
	SuggestedQuestions []string       `json:"suggested_questions"`
}

// ShortlistingResponse is the complete result of one shortlist request.
// Evaluations holds only the shortlisted candidates' evaluations, in the
// same order as ShortlistedCandidates.
type ShortlistingResponse struct {
	TotalCandidates       int                  `json:"total_candidates"`
	EvaluatedCandidates   int                  `json:"evaluated_candidates"`
	ShortlistedCandidates []CandidateProfile   `json:"shortlisted_candidates"`
	Evaluations           []AIEvaluationResult `json:"evaluations"`
	ProcessingTime        time.Duration        `json:"processing_time"`
	AIModel               string               `json:"ai_model"`
	GeneratedAt           time.Time            `json:"generated_at"`
}

// ClampScore forces a raw score into [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
