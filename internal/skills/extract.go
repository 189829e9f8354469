package skills

import "regexp"

// Extract returns the distinct catalog terms present in text. Matching is
// case-insensitive and respects word boundaries, so a catalog entry "java"
// does not match inside "javascript". Multi-token phrases are matched
// literally. Terms are visited in Terms order, so the result is
// lexicographically sorted. Empty text yields an empty result.
//
// This is O(|catalog| x |text|) per document, which is fine for catalogs of
// tens to low hundreds of terms.
func Extract(text string, catalog Catalog) []string {
	if text == "" || len(catalog) == 0 {
		return nil
	}

	var found []string
	for _, term := range catalog.Terms() {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if re.MatchString(text) {
			found = append(found, term)
		}
	}
	return found
}
