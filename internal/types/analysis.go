// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentKind identifies which analyzer produced an AnalysisResult
type DocumentKind string

const (
	// KindResume marks results produced from resume text
	KindResume DocumentKind = "resume"
	// KindJobDescription marks results produced from job-description text
	KindJobDescription DocumentKind = "job_description"
)

// AnalysisResult holds the signals extracted from a single document.
// Skills and ActionVerbs are sorted distinct phrases. Keywords are ranked by
// frequency, ties kept in first-seen order. ActionVerbs is only populated
// for resumes.
type AnalysisResult struct {
	Kind        DocumentKind `json:"kind"`
	Skills      []string     `json:"skills"`
	ActionVerbs []string     `json:"action_verbs,omitempty"`
	Keywords    []string     `json:"keywords"`
}

// EmptyAnalysis returns the empty result shape for the given document kind.
// Resume results carry an empty (non-nil) ActionVerbs slice.
func EmptyAnalysis(kind DocumentKind) AnalysisResult {
	result := AnalysisResult{
		Kind:     kind,
		Skills:   []string{},
		Keywords: []string{},
	}
	if kind == KindResume {
		result.ActionVerbs = []string{}
	}
	return result
}
