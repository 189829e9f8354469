// Package scoring provides the pure score functions used to rank
// candidates: cosine similarity, skill overlap, and the weighted
// combination that yields the final score.
package scoring

import (
	"math"
	"strings"
)

// Weights for the final score combination. These are fixed constants of
// the design: changing them breaks score comparability across runs.
const (
	similarityWeight = 0.6
	skillWeight      = 0.3
	experienceWeight = 0.1
)

// CosineSimilarity returns the cosine similarity of two equal-length
// vectors. Nil, empty, length-mismatched or zero vectors score 0.0. The
// value is recorded as-is and may be negative.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SkillOverlap scores the intersection of resume skills with JD skills,
// normalized by the JD skill count. Comparison is case-insensitive with set
// semantics. An empty JD skill set scores 0.0: a posting that names no
// skills awards no skill credit.
func SkillOverlap(jdSkills, resumeSkills []string) float64 {
	if len(jdSkills) == 0 {
		return 0.0
	}

	jdSet := make(map[string]struct{}, len(jdSkills))
	for _, s := range jdSkills {
		jdSet[strings.ToLower(s)] = struct{}{}
	}

	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = struct{}{}
	}

	matched := 0
	for s := range jdSet {
		if _, ok := resumeSet[s]; ok {
			matched++
		}
	}

	denom := len(jdSet)
	if denom < 1 {
		denom = 1
	}
	return float64(matched) / float64(denom)
}

// Combine applies the weighted formula
// 0.6*similarity + 0.3*skill + 0.1*experience, rounded to 3 decimals.
func Combine(similarity, skill, experience float64) float64 {
	score := similarityWeight*similarity + skillWeight*skill + experienceWeight*experience
	return math.Round(score*1000) / 1000
}
