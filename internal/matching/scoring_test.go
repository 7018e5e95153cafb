package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		matched  int
		jobTotal int
		want     float64
	}{
		{"two of three", 2, 3, 0.67},
		{"one of three", 1, 3, 0.33},
		{"all", 4, 4, 1.0},
		{"none", 0, 5, 0.0},
		{"empty job", 0, 0, 0.0},
		{"half rounds to even", 1, 8, 0.12},
		{"half rounds up to even", 3, 8, 0.38},
		{"stored above half rounds up", 1, 40, 0.03},
		{"stored below half rounds down", 3, 40, 0.07},
		{"nine of forty", 9, 40, 0.23},
		{"seven of two hundred", 7, 200, 0.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeMatchScore(tt.matched, tt.jobTotal))
		})
	}
}

func TestCompareSkills_SortedAndNonNil(t *testing.T) {
	matched, missing := compareSkills(nil, nil)
	assert.NotNil(t, matched)
	assert.NotNil(t, missing)

	matched, missing = compareSkills([]string{"sql", "aws"}, []string{"react", "sql", "aws", "git"})
	assert.Equal(t, []string{"aws", "sql"}, matched)
	assert.Equal(t, []string{"git", "react"}, missing)
}

func TestBuildRecommendations(t *testing.T) {
	assert.Equal(t, []string{}, buildRecommendations(nil, 0.9, DefaultTailoringThreshold))
	assert.Equal(t,
		[]string{"Consider adding or improving: a, b."},
		buildRecommendations([]string{"a", "b"}, 0.7, DefaultTailoringThreshold))
	assert.Equal(t,
		[]string{"Your resume could be better tailored to this job description."},
		buildRecommendations(nil, 0.69, DefaultTailoringThreshold))
}
