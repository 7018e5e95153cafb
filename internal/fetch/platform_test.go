package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://example.com/careers/123", PlatformUnknown},
		{"https://notgreenhouse.io/jobs", PlatformUnknown},
		{"::not a url::", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPostingSelectors(t *testing.T) {
	content, noise := PostingSelectors("https://boards.greenhouse.io/acme/jobs/1")
	assert.Equal(t, ".job__description.body", content[0])
	assert.Contains(t, noise, "form")
	assert.Contains(t, noise, ".voluntary-self-id")

	content, noise = PostingSelectors("https://example.com/job")
	assert.Equal(t, JobPostingSelectors(), content)
	assert.Equal(t, commonNoise, noise)
}

func TestPostingSelectors_DoesNotAliasRules(t *testing.T) {
	_, noise := PostingSelectors("https://jobs.lever.co/acme/1")
	noise[0] = "mutated"

	_, again := PostingSelectors("https://jobs.lever.co/acme/1")
	assert.Equal(t, "form", again[0])
}
