// Package pipeline implements the company research prefill flow: URL
// validation, content fetching, prompt assembly, structured extraction, and
// mapping into onboarding form data.
package pipeline

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// ValidationError reports unusable request input. It is safe to show to
// the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NormalizeWebsiteURL trims raw, adds https:// when no scheme is given, and
// accepts only http and https URLs with a host.
func NormalizeWebsiteURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &ValidationError{Field: "websiteUrl", Message: "websiteUrl is required"}
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || strings.ContainsAny(s, " \t\n") {
		return "", &ValidationError{Field: "websiteUrl", Message: "websiteUrl must be a valid URL"}
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", &ValidationError{Field: "websiteUrl", Message: "websiteUrl must use http or https"}
	}
	if u.User != nil {
		return "", &ValidationError{Field: "websiteUrl", Message: "websiteUrl must not contain user info"}
	}
	host := u.Hostname()
	if host == "" || (!strings.Contains(host, ".") && host != "localhost") {
		return "", &ValidationError{Field: "websiteUrl", Message: "websiteUrl must include a domain"}
	}

	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	u.Fragment, u.RawFragment = "", ""
	u.Path, u.RawPath = strings.TrimRight(u.Path, "/"), ""
	return u.String(), nil
}

var linkedInCompanyRe = regexp.MustCompile(`^https://(www\.)?linkedin\.com/company/[^/\s?#]+(/[^\s?#]*)?([?#]\S*)?$`)

// ValidateLinkedInURL accepts only company pages such as
// https://www.linkedin.com/company/stripe. Personal profiles are rejected.
func ValidateLinkedInURL(raw string) error {
	if !linkedInCompanyRe.MatchString(strings.TrimSpace(raw)) {
		return &ValidationError{
			Field:   "linkedinUrl",
			Message: "linkedinUrl must be a LinkedIn company page (https://linkedin.com/company/...)",
		}
	}
	return nil
}

// ValidateRequest checks req and returns it with the website URL
// normalized. No network call is made.
func ValidateRequest(req model.ResearchRequest) (model.ResearchRequest, error) {
	website, err := NormalizeWebsiteURL(req.WebsiteURL)
	if err != nil {
		return req, err
	}
	out := model.ResearchRequest{WebsiteURL: website}
	if li := strings.TrimSpace(req.LinkedInURL); li != "" {
		if err := ValidateLinkedInURL(li); err != nil {
			return req, err
		}
		out.LinkedInURL = li
	}
	return out, nil
}
