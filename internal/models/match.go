package models

// MatchCandidate is the denormalized candidate view returned by the keyword
// matcher, with the derived activity and completeness scores attached.
type MatchCandidate struct {
	CandidateProfile
	ActivityScore       int `json:"activity_score"`
	ProfileCompleteness int `json:"profile_completeness"`
}

// MatchResult is one keyword-match hit. Computed fresh per query; never
// cached or persisted.
type MatchResult struct {
	Candidate      MatchCandidate `json:"candidate"`
	MatchScore     int            `json:"match_score"`
	MatchReasons   []string       `json:"match_reasons"`
	KeywordMatches []string       `json:"keyword_matches"`
}
