package form

import (
	"strings"

	"go-internship-automation/internal/config"
)

// Profile is the applicant data a form can ask for.
type Profile struct {
	FullName   string
	Email      string
	Phone      string
	GitHub     string
	LinkedIn   string
	Portfolio  string
	ResumePath string
	// Entries are every USER_INFO key in file order.
	Entries []config.Entry
}

func ProfileFromConfig(cfg *config.Config) Profile {
	return Profile{
		FullName:   cfg.UserInfo.FullName,
		Email:      cfg.Credentials.Email,
		Phone:      cfg.UserInfo.Phone,
		GitHub:     cfg.UserInfo.GitHub,
		LinkedIn:   cfg.UserInfo.LinkedIn,
		Portfolio:  cfg.UserInfo.Portfolio,
		ResumePath: cfg.UserInfo.ResumePath,
		Entries:    cfg.UserInfo.Entries,
	}
}

var coverLetterHints = []string{"cover", "letter", "why", "reason"}

// ResolveValue picks the answer for a text-like field from its category,
// first rule that matches wins. Unmatched categories fall back to the first
// profile key contained in the identifier.
func (p Profile) ResolveValue(field FieldDescriptor, job JobAnalysis) string {
	category := strings.ToLower(field.Category)

	switch {
	case strings.Contains(category, "name"):
		return p.FullName
	case strings.Contains(category, "email"):
		return p.Email
	case strings.Contains(category, "phone"):
		return p.Phone
	case strings.Contains(category, "github"):
		return p.GitHub
	case strings.Contains(category, "linkedin"):
		return p.LinkedIn
	case strings.Contains(category, "portfolio"):
		return p.Portfolio
	case containsAny(category, coverLetterHints):
		if job.SuggestedResponse != "" {
			return job.SuggestedResponse
		}
		return CoverLetter(job)
	}

	identifier := strings.ToLower(field.Identifier)
	for _, e := range p.Entries {
		if e.Key != "" && strings.Contains(identifier, strings.ToLower(e.Key)) {
			return e.Value
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
