// Package textproc provides text normalization for scoring input.
package textproc

import (
	"regexp"
	"strings"
)

// Normalizer turns raw document text into a cleaned token string suitable
// for skill extraction and embedding. Implementations must be deterministic
// pure functions of their input.
type Normalizer interface {
	Normalize(raw string) string
}

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stopWords covers common English function words that carry no signal for
// skill or similarity scoring.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"been": {}, "but": {}, "by": {}, "can": {}, "did": {}, "do": {},
	"does": {}, "for": {}, "from": {}, "had": {}, "has": {}, "have": {},
	"he": {}, "her": {}, "his": {}, "i": {}, "if": {}, "in": {}, "into": {},
	"is": {}, "it": {}, "its": {}, "me": {}, "my": {}, "no": {}, "not": {},
	"of": {}, "on": {}, "or": {}, "our": {}, "she": {}, "so": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "they": {}, "this": {}, "to": {},
	"was": {}, "we": {}, "were": {}, "will": {}, "with": {}, "you": {},
	"your": {},
}

// Cleaner is the default Normalizer: lowercase, strip non-alphanumerics,
// collapse whitespace, drop stop words.
type Cleaner struct{}

// Normalize implements Normalizer.
func (Cleaner) Normalize(raw string) string {
	cleaned := Clean(raw)
	if cleaned == "" {
		return ""
	}

	fields := strings.Fields(cleaned)
	kept := make([]string, 0, len(fields))
	for _, word := range fields {
		if _, stop := stopWords[word]; stop {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// Clean applies the fallback cleaned form used when no Normalizer is
// configured: lowercase, strip non-alphanumerics, collapse whitespace.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	text := strings.ToLower(raw)
	text = nonAlnumRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
