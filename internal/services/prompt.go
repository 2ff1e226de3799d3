package services

import (
	"fmt"
	"strconv"
	"strings"

	"talentlink/shortlist-engine/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildEvaluationPrompt renders the evaluation prompt for one candidate
// against one project. Optional fields are rendered as explicit
// placeholders so the evaluator always sees a uniform shape.
func (pb *PromptBuilder) BuildEvaluationPrompt(project *models.ProjectRequirements, candidate *models.CandidateProfile) string {
	return fmt.Sprintf(`You are an expert talent evaluator assessing a candidate's fit for a project.

PROJECT:
- Title: %s
- Description: %s
- Category: %s
- Subcategory: %s
- Required Skills: %s
- Experience Level: %s
- Team Size: %d
- Duration: %d months
- Requirements: %s
- Deliverables: %s

CANDIDATE:
- Name: %s
- University: %s
- Major: %s
- Skills: %s
- Bio: %s
- Graduation Year: %s
- LinkedIn: %s
- Cover Letter: %s
- Motivation: %s
- Previous Experience: %s

Evaluate how well this candidate fits the project. Consider technical skill
alignment, cultural fit, motivation, and growth potential.

Return your response in the following JSON format:
{
  "overallScore": <0-100>,
  "confidence": <0-100>,
  "reasoning": "<2-4 sentences explaining the score>",
  "strengths": ["<strength>", ...],
  "concerns": ["<concern>", ...],
  "recommendation": "<STRONG_FIT | GOOD_FIT | MODERATE_FIT | POOR_FIT>",
  "keyInsights": {
    "technicalFit": <0-100>,
    "culturalFit": <0-100>,
    "motivationLevel": <0-100>,
    "growthPotential": <0-100>
  },
  "suggestedQuestions": ["<interview question>", ...]
}

Be objective and specific. Reference actual details from the candidate profile.`,
		orPlaceholder(project.Title),
		orPlaceholder(project.Description),
		orPlaceholder(project.Category),
		orPlaceholder(project.Subcategory),
		listOrPlaceholder(project.SkillsRequired),
		orPlaceholder(project.ExperienceLevel),
		project.TeamSize,
		project.DurationMonths,
		listOrPlaceholder(project.Requirements),
		listOrPlaceholder(project.Deliverables),
		orPlaceholder(candidate.Name),
		orPlaceholder(candidate.University),
		orPlaceholder(candidate.Major),
		listOrPlaceholder(candidate.Skills),
		orProvided(candidate.Bio),
		yearOrPlaceholder(candidate.GraduationYear),
		orProvided(candidate.Linkedin),
		orProvided(candidate.CoverLetter),
		orProvided(candidate.Motivation),
		listOrPlaceholder(candidate.PreviousExperience),
	)
}

// SystemPrompt is the fixed system message sent with every evaluation.
func (pb *PromptBuilder) SystemPrompt() string {
	return "You are a precise talent evaluation assistant. Always respond with a single valid JSON object and nothing else."
}

func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not specified"
	}
	return value
}

func orProvided(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not provided"
	}
	return value
}

func listOrPlaceholder(values []string) string {
	if len(values) == 0 {
		return "Not specified"
	}
	return strings.Join(values, ", ")
}

func yearOrPlaceholder(year int) string {
	if year == 0 {
		return "Not specified"
	}
	return strconv.Itoa(year)
}
