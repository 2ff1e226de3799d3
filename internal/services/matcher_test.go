package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlink/shortlist-engine/internal/models"
)

func TestQueryTermsDropShortTokens(t *testing.T) {
	matcher := NewKeywordMatcherService()

	terms := matcher.QueryTerms("Python developer in AI at UAE")
	assert.Equal(t, []string{"python", "developer", "uae"}, terms)

	assert.Empty(t, matcher.QueryTerms("a an to"))
	assert.Empty(t, matcher.QueryTerms(""))
}

func TestMatchByKeywordLocationAndSkill(t *testing.T) {
	matcher := NewKeywordMatcherService()

	candidate := models.CandidateProfile{
		ID:       uuid.New(),
		Name:     "Amira Hassan",
		Location: "Dubai",
		Skills:   pq.StringArray{"Python", "React"},
	}

	results := matcher.MatchByKeyword("python developer in dubai", 10, []models.CandidateProfile{candidate})
	require.Len(t, results, 1)

	result := results[0]
	// 20 for location plus 15 for the one matching skill.
	assert.Equal(t, 35, result.MatchScore)
	assert.Contains(t, result.MatchReasons, "Located in Dubai")
	assert.Contains(t, result.MatchReasons, "Skills: Python")
	assert.Contains(t, result.KeywordMatches, "Python")
}

func TestMatchByKeywordAllFieldWeights(t *testing.T) {
	matcher := NewKeywordMatcherService()

	candidate := models.CandidateProfile{
		ID:         uuid.New(),
		Name:       "Jonas Weber",
		University: "Technical University of Munich",
		Major:      "Robotics Engineering",
		Location:   "Munich",
		Skills:     pq.StringArray{"Robotics"},
		Interests:  pq.StringArray{"Robotics"},
		Bio:        "Building robotics demos in Munich.",
	}

	results := matcher.MatchByKeyword("robotics munich", 10, []models.CandidateProfile{candidate})
	require.Len(t, results, 1)

	// 30 university + 25 major + 20 location + 15 skill + 10 interest + 5 bio,
	// clamped to 100.
	assert.Equal(t, 100, results[0].MatchScore)
	assert.Contains(t, results[0].MatchReasons, "Studies at Technical University of Munich")
	assert.Contains(t, results[0].MatchReasons, "Major: Robotics Engineering")
}

func TestMatchByKeywordBioBonusIsFlat(t *testing.T) {
	matcher := NewKeywordMatcherService()

	candidate := models.CandidateProfile{
		ID:  uuid.New(),
		Bio: "python and django and flask projects",
	}

	results := matcher.MatchByKeyword("python django flask", 10, []models.CandidateProfile{candidate})
	require.Len(t, results, 1)
	// Three bio term hits still add a single +5.
	assert.Equal(t, 5, results[0].MatchScore)
}

func TestMatchByKeywordSkillsStackPerSkill(t *testing.T) {
	matcher := NewKeywordMatcherService()

	candidate := models.CandidateProfile{
		ID:     uuid.New(),
		Skills: pq.StringArray{"Python", "SQL", "Django"},
	}

	results := matcher.MatchByKeyword("python sql django", 10, []models.CandidateProfile{candidate})
	require.Len(t, results, 1)
	assert.Equal(t, 45, results[0].MatchScore)
	assert.Contains(t, results[0].MatchReasons, "Skills: Python, SQL, Django")
}

func TestMatchByKeywordSortsAndLimits(t *testing.T) {
	matcher := NewKeywordMatcherService()

	candidates := []models.CandidateProfile{
		{ID: uuid.New(), Name: "Bio only", Bio: "python fan"},
		{ID: uuid.New(), Name: "Skilled", Skills: pq.StringArray{"Python"}},
		{ID: uuid.New(), Name: "Local", Location: "Python City", Skills: pq.StringArray{"Python"}},
	}

	results := matcher.MatchByKeyword("python", 2, candidates)
	require.Len(t, results, 2)
	assert.Equal(t, "Local", results[0].Candidate.Name)
	assert.Equal(t, 35, results[0].MatchScore)
	assert.Equal(t, "Skilled", results[1].Candidate.Name)
	assert.Equal(t, 15, results[1].MatchScore)
}

func TestActivityScoreDerivation(t *testing.T) {
	cases := []struct {
		name             string
		updatedDaysAgo   int
		applicationCount int
		expected         int
	}{
		{"fresh and active", 1, 5, 90},
		{"fresh, no applications", 2, 0, 70},
		{"recent, one application", 20, 1, 70},
		{"stale", 90, 0, 50},
		{"stale but applying", 90, 3, 70},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := &models.CandidateProfile{
				UpdatedAt:        time.Now().Add(-time.Duration(tc.updatedDaysAgo) * 24 * time.Hour),
				ApplicationCount: tc.applicationCount,
			}
			assert.Equal(t, tc.expected, activityScore(candidate))
		})
	}
}

func TestProfileCompleteness(t *testing.T) {
	assert.Equal(t, 0, profileCompleteness(&models.CandidateProfile{}))

	full := &models.CandidateProfile{
		University: "AUS",
		Major:      "CS",
		Skills:     pq.StringArray{"Go"},
		Bio:        "bio",
		Location:   "Dubai",
	}
	assert.Equal(t, 100, profileCompleteness(full))

	partial := &models.CandidateProfile{University: "AUS", Skills: pq.StringArray{"Go"}}
	assert.Equal(t, 40, profileCompleteness(partial))
}
