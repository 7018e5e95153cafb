package matching

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	missingSkillsTemplate = "Consider adding or improving: %s."
	tailoringNote         = "Your resume could be better tailored to this job description."
)

// compareSkills returns resume ∩ job and job − resume, both sorted
func compareSkills(resumeSkills, jobSkills []string) (matched, missing []string) {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[skill] = true
	}

	matched = make([]string, 0)
	missing = make([]string, 0)
	seen := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		if seen[skill] {
			continue
		}
		seen[skill] = true
		if resumeSet[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// computeMatchScore returns matched / max(jobTotal, 1) rounded to two decimals.
// Rounding works on the exact binary value of the ratio: 0.025 is stored just
// above the half and becomes 0.03, while 0.125 is an exact half and rounds to
// even (0.12).
func computeMatchScore(matched, jobTotal int) float64 {
	if jobTotal < 1 {
		jobTotal = 1
	}
	score := float64(matched) / float64(jobTotal)
	score = roundHundredths(score)

	// Clamp to valid range
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

// roundHundredths rounds x to two decimals using the shortest correctly rounded
// decimal form of its exact binary value.
func roundHundredths(x float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return rounded
}

// buildRecommendations lists missing skills and adds the tailoring note below threshold
func buildRecommendations(missing []string, score, threshold float64) []string {
	recommendations := make([]string, 0, 2)
	if len(missing) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(missingSkillsTemplate, strings.Join(missing, ", ")))
	}
	if score < threshold {
		recommendations = append(recommendations, tailoringNote)
	}
	return recommendations
}
