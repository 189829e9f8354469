// Package skills provides the skill catalog and keyword extraction over
// cleaned resume and job-description text.
package skills

import (
	"os"
	"sort"
	"strings"
)

// defaultSkills is the built-in catalog used when no skills file is
// supplied. Deployments with a richer taxonomy should provide their own
// file, one term per line.
var defaultSkills = []string{
	"python",
	"java",
	"c++",
	"c#",
	"javascript",
	"typescript",
	"react",
	"nodejs",
	"django",
	"flask",
	"sql",
	"postgresql",
	"mysql",
	"aws",
	"azure",
	"gcp",
	"docker",
	"kubernetes",
	"nlp",
	"pandas",
	"numpy",
	"tensorflow",
	"pytorch",
}

// Catalog is an immutable set of lowercase skill terms, scoped to one
// ranking run.
type Catalog map[string]struct{}

// Load reads a skills file with one term per line. Terms are case-folded
// and blank lines dropped. A missing, empty or unreadable file falls back
// to the built-in default list, so the returned catalog is never empty.
func Load(path string) Catalog {
	catalog := make(Catalog)

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				term := strings.ToLower(strings.TrimSpace(line))
				if term != "" {
					catalog[term] = struct{}{}
				}
			}
		}
	}

	if len(catalog) == 0 {
		for _, term := range defaultSkills {
			catalog[term] = struct{}{}
		}
	}

	return catalog
}

// Terms returns the catalog's terms sorted lexicographically.
func (c Catalog) Terms() []string {
	terms := make([]string, 0, len(c))
	for term := range c {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
