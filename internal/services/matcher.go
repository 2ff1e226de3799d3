package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"talentlink/shortlist-engine/internal/models"
)

// Additive match weights, accumulated per candidate and clamped to 100.
const (
	universityWeight = 30
	majorWeight      = 25
	locationWeight   = 20
	skillWeight      = 15
	interestWeight   = 10
	bioWeight        = 5
)

// KeywordMatcherService is the deterministic matching path: no reasoning
// calls, no randomness. The caller supplies a pre-filtered candidate pool
// (see repositories.CandidateRepository.SearchByTerms).
type KeywordMatcherService interface {
	MatchByKeyword(query string, limit int, candidates []models.CandidateProfile) []models.MatchResult
	QueryTerms(query string) []string
}

type keywordMatcherService struct{}

func NewKeywordMatcherService() KeywordMatcherService {
	return &keywordMatcherService{}
}

// QueryTerms lower-cases the query, splits on whitespace, and discards
// terms of length <= 2.
func (m *keywordMatcherService) QueryTerms(query string) []string {
	terms := make([]string, 0)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if len(term) > 2 {
			terms = append(terms, term)
		}
	}
	return terms
}

// MatchByKeyword implements KeywordMatcherService.
func (m *keywordMatcherService) MatchByKeyword(query string, limit int, candidates []models.CandidateProfile) []models.MatchResult {
	terms := m.QueryTerms(query)

	results := make([]models.MatchResult, 0, len(candidates))
	for i := range candidates {
		results = append(results, m.scoreCandidate(&candidates[i], terms))
	}

	// Plain descending sort; tie order is not significant on this path.
	sort.Slice(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (m *keywordMatcherService) scoreCandidate(candidate *models.CandidateProfile, terms []string) models.MatchResult {
	score := 0
	reasons := make([]string, 0)
	keywords := make([]string, 0)

	if term, ok := substringMatch(candidate.University, terms); ok {
		score += universityWeight
		reasons = append(reasons, fmt.Sprintf("Studies at %s", candidate.University))
		keywords = append(keywords, term)
	}

	if term, ok := substringMatch(candidate.Major, terms); ok {
		score += majorWeight
		reasons = append(reasons, fmt.Sprintf("Major: %s", candidate.Major))
		keywords = append(keywords, term)
	}

	if term, ok := substringMatch(candidate.Location, terms); ok {
		score += locationWeight
		reasons = append(reasons, fmt.Sprintf("Located in %s", candidate.Location))
		keywords = append(keywords, term)
	}

	if matched := setMatches(candidate.Skills, terms); len(matched) > 0 {
		score += skillWeight * len(matched)
		reasons = append(reasons, fmt.Sprintf("Skills: %s", strings.Join(matched, ", ")))
		keywords = append(keywords, matched...)
	}

	if matched := setMatches(candidate.Interests, terms); len(matched) > 0 {
		score += interestWeight * len(matched)
		reasons = append(reasons, fmt.Sprintf("Interests: %s", strings.Join(matched, ", ")))
		keywords = append(keywords, matched...)
	}

	// Flat bonus regardless of how many terms the bio contains.
	if _, ok := substringMatch(candidate.Bio, terms); ok {
		score += bioWeight
		reasons = append(reasons, "Profile bio matches the search")
	}

	return models.MatchResult{
		Candidate: models.MatchCandidate{
			CandidateProfile:    *candidate,
			ActivityScore:       activityScore(candidate),
			ProfileCompleteness: profileCompleteness(candidate),
		},
		MatchScore:     models.ClampScore(score),
		MatchReasons:   reasons,
		KeywordMatches: dedupe(keywords),
	}
}

// substringMatch reports the first term contained in the field,
// case-insensitively.
func substringMatch(field string, terms []string) (string, bool) {
	if field == "" {
		return "", false
	}
	lowered := strings.ToLower(field)
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return term, true
		}
	}
	return "", false
}

// setMatches returns the entries of the set that equal any term,
// case-insensitively, preserving the set's casing and order.
func setMatches(set []string, terms []string) []string {
	matched := make([]string, 0)
	for _, entry := range set {
		lowered := strings.ToLower(entry)
		for _, term := range terms {
			if lowered == term {
				matched = append(matched, entry)
				break
			}
		}
	}
	return matched
}

func activityScore(candidate *models.CandidateProfile) int {
	score := 50

	since := time.Since(candidate.UpdatedAt)
	switch {
	case since <= 7*24*time.Hour:
		score += 20
	case since <= 30*24*time.Hour:
		score += 10
	}

	if candidate.ApplicationCount >= 1 {
		score += 10
	}
	if candidate.ApplicationCount >= 3 {
		score += 10
	}

	return score
}

func profileCompleteness(candidate *models.CandidateProfile) int {
	score := 0
	if candidate.University != "" {
		score += 20
	}
	if candidate.Major != "" {
		score += 20
	}
	if len(candidate.Skills) > 0 {
		score += 20
	}
	if candidate.Bio != "" {
		score += 20
	}
	if candidate.Location != "" {
		score += 20
	}
	return score
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		key := strings.ToLower(value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, value)
	}
	return out
}
