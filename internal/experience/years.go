// Package experience extracts and normalizes years-of-experience signals
// from raw resume text.
package experience

import (
	"math"
	"regexp"
	"strconv"
)

// DefaultCap is the ceiling, in years, applied when normalizing to [0,1].
const DefaultCap = 10.0

// yearPatterns covers the phrasings resumes use for "N years of
// experience": "5+ years", "5 yrs", "7-year", "5 years". N is 1-2 digits.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:years|year|yrs\.|yrs)`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*-\s*year`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*years?`),
}

// ExtractYears scans raw text for year-of-experience mentions and returns
// the maximum value found. The same fact often appears under several
// phrasings ("5 years" and "5+ yrs"), so the maximum avoids under-counting
// at the cost of occasionally over-counting unrelated mentions.
func ExtractYears(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	best := 0.0
	found := false
	for _, re := range yearPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if !found || value > best {
				best = value
				found = true
			}
		}
	}

	if !found {
		return 0, false
	}
	return best, true
}

// Normalize maps detected years onto [0,1] against a cap. Absent or
// non-positive years score zero; anything at or above the cap scores 1.0.
// The result is rounded to 4 decimals.
func Normalize(years float64, ok bool, cap float64) float64 {
	if !ok || years <= 0 {
		return 0.0
	}
	if cap <= 0 {
		cap = DefaultCap
	}
	if years > cap {
		years = cap
	}
	return math.Round(years/cap*10000) / 10000
}
