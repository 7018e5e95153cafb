package fetch

import (
	"net/url"
	"strings"
)

// Platform is a known applicant-tracking system hosting job postings.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

type platformRule struct {
	platform Platform
	hosts    []string
	content  []string
	noise    []string
}

var platformRules = []platformRule{
	{
		platform: PlatformGreenhouse,
		hosts:    []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		hosts:    []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	{
		platform: PlatformWorkday,
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		content:  []string{"[data-automation-id='jobDescription']", ".gwt-HTML", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", ".application-section"},
	},
	{
		platform: PlatformAshby,
		hosts:    []string{"ashbyhq.com"},
		content:  []string{"[class*='_descriptionText']", ".ashby-job-posting-right-pane", "main"},
		noise:    []string{"[class*='_applicationForm']"},
	},
}

// commonNoise is removed from postings on every platform: application forms,
// EEO disclosures, share widgets and consent banners.
var commonNoise = []string{
	"form",
	".application-form",
	".apply-button-container",
	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	".legal-disclosure",
	".social-share",
	".share-buttons",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board platform from a URL host.
func DetectPlatform(urlStr string) Platform {
	if rule := lookupRule(urlStr); rule != nil {
		return rule.platform
	}
	return PlatformUnknown
}

// PostingSelectors returns the content and noise selectors for a posting URL.
func PostingSelectors(urlStr string) (content, noise []string) {
	noise = append([]string{}, commonNoise...)
	rule := lookupRule(urlStr)
	if rule == nil {
		return JobPostingSelectors(), noise
	}
	return append([]string{}, rule.content...), append(noise, rule.noise...)
}

func lookupRule(urlStr string) *platformRule {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil
	}
	host := strings.ToLower(parsed.Hostname())
	for i := range platformRules {
		for _, suffix := range platformRules[i].hosts {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return &platformRules[i]
			}
		}
	}
	return nil
}
