package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"talentlink/shortlist-engine/internal/models"
)

// ErrMalformedResponse means the reasoning service returned content that is
// not parseable JSON at all. Missing or out-of-range fields inside valid
// JSON are never an error; they are defaulted.
var ErrMalformedResponse = errors.New("malformed reasoning response")

const (
	defaultOverallScore = 50
	defaultConfidence   = 70
	defaultSubScore     = 50
)

// rawEvaluation is the loose shape the reasoning service returns. Pointer
// fields distinguish "absent" from a literal zero.
type rawEvaluation struct {
	OverallScore   *float64 `json:"overallScore"`
	Confidence     *float64 `json:"confidence"`
	Reasoning      string   `json:"reasoning"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Recommendation string   `json:"recommendation"`
	KeyInsights    struct {
		TechnicalFit    *float64 `json:"technicalFit"`
		CulturalFit     *float64 `json:"culturalFit"`
		MotivationLevel *float64 `json:"motivationLevel"`
		GrowthPotential *float64 `json:"growthPotential"`
	} `json:"keyInsights"`
	SuggestedQuestions []string `json:"suggestedQuestions"`
}

// ParseEvaluation turns raw response content into a complete
// AIEvaluationResult. It only fails when the content is not JSON; every
// missing field gets a default and every score is clamped into [0,100].
func ParseEvaluation(content string, candidateID uuid.UUID) (*models.AIEvaluationResult, error) {
	var raw rawEvaluation
	if err := json.Unmarshal([]byte(extractJSON(content)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &models.AIEvaluationResult{
		CandidateID:    candidateID,
		OverallScore:   scoreOrDefault(raw.OverallScore, defaultOverallScore),
		Confidence:     scoreOrDefault(raw.Confidence, defaultConfidence),
		Reasoning:      raw.Reasoning,
		Strengths:      orEmpty(raw.Strengths),
		Concerns:       orEmpty(raw.Concerns),
		Recommendation: recommendationOrDefault(raw.Recommendation),
		KeyInsights: models.KeyInsights{
			TechnicalFit:    scoreOrDefault(raw.KeyInsights.TechnicalFit, defaultSubScore),
			CulturalFit:     scoreOrDefault(raw.KeyInsights.CulturalFit, defaultSubScore),
			MotivationLevel: scoreOrDefault(raw.KeyInsights.MotivationLevel, defaultSubScore),
			GrowthPotential: scoreOrDefault(raw.KeyInsights.GrowthPotential, defaultSubScore),
		},
		SuggestedQuestions: orEmpty(raw.SuggestedQuestions),
	}, nil
}

func scoreOrDefault(value *float64, fallback int) int {
	if value == nil {
		return fallback
	}
	return models.ClampScore(int(*value))
}

func recommendationOrDefault(value string) models.Recommendation {
	switch models.Recommendation(strings.ToUpper(strings.TrimSpace(value))) {
	case models.StrongFit:
		return models.StrongFit
	case models.GoodFit:
		return models.GoodFit
	case models.ModerateFit:
		return models.ModerateFit
	case models.PoorFit:
		return models.PoorFit
	default:
		return models.ModerateFit
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
