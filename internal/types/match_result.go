//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the outcome of comparing a resume against a job description
type MatchResult struct {
	MatchScore      float64  `json:"match_score"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Recommendations []string `json:"recommendations"`
}

// RankedJob is a single job description scored against a resume
type RankedJob struct {
	Rank   int         `json:"rank"`
	JobID  string      `json:"job_id"`
	Source string      `json:"source,omitempty"`
	Result MatchResult `json:"result"`
}

// JobRanking is a resume matched against several job descriptions, best first
type JobRanking struct {
	ResumeSource string      `json:"resume_source,omitempty"`
	Jobs         []RankedJob `json:"jobs"`
}
