package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

var (
	firstIntRe = regexp.MustCompile(`\d+`)

	// "120 employees", "40+ full-time staff"
	countBeforeWordRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:full[- ]time\s+)?(?:employees?|people|staff|team members|workers)\b`)
	// "team of 7", "headcount: 120"
	wordBeforeCountRe = regexp.MustCompile(`(?i)\b(?:team|staff|headcount|workforce)\s*(?:of|:)?\s*(\d+)`)
)

// BucketCompanySize maps a free-text size description to a headcount tier.
// Thousands separators are removed first. An integer next to a headcount
// word wins; otherwise the first integer is used. Text without digits maps
// to CompanySizeUnknown.
func BucketCompanySize(text string) model.CompanySize {
	digits := headcountDigits(strings.ReplaceAll(text, ",", ""))
	if digits == "" {
		return model.CompanySizeUnknown
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Only overflow gets here.
		return model.CompanySizeOver1K
	}

	switch {
	case n <= 1:
		return model.CompanySizeSolo
	case n <= 10:
		return model.CompanySize1To10
	case n <= 50:
		return model.CompanySize11To50
	case n <= 200:
		return model.CompanySize51To200
	case n <= 1000:
		return model.CompanySize201To1K
	default:
		return model.CompanySizeOver1K
	}
}

func headcountDigits(text string) string {
	for _, re := range []*regexp.Regexp{countBeforeWordRe, wordBeforeCountRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return firstIntRe.FindString(text)
}
