package ranking

import "strings"

// Candidate is one scored resume. Records are immutable once built by the
// pipeline.
type Candidate struct {
	// Name is the display identifier, the base name of the source path.
	Name string
	// Path is the resume source identifier.
	Path string
	// Similarity is the cosine similarity against the job description
	// embedding, recorded as-is (cosine may be negative, never clamped).
	Similarity float64
	// SkillScore is the JD skill overlap in [0,1].
	SkillScore float64
	// ExperienceYears is the maximum detected years mention, 0 when absent.
	ExperienceYears float64
	// ExperienceScore is the capped, normalized experience in [0,1].
	ExperienceScore float64
	// FinalScore is the weighted combination, rounded to 3 decimals.
	FinalScore float64
	// MatchedSkills holds the distinct matched catalog terms,
	// lexicographically sorted.
	MatchedSkills []string
}

// MatchedSkillsDisplay renders the matched skills as the delimited string
// used in tables and CSV output.
func (c Candidate) MatchedSkillsDisplay() string {
	return strings.Join(c.MatchedSkills, ", ")
}

// Table is a ranked sequence of candidates, ordered by final score
// descending with similarity descending as the tie break. Produced fresh
// each invocation; never persisted.
type Table struct {
	Candidates []Candidate
	// JDEmbedded reports whether a job-description vector was available
	// for the run. False means similarity was disabled, because the job
	// description was blank or its embedding failed.
	JDEmbedded bool
}

// Empty reports whether the table has no candidates.
func (t Table) Empty() bool {
	return len(t.Candidates) == 0
}
