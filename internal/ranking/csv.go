package ranking

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader defines the CSV-exportable serialization of the ranked table.
var csvHeader = []string{
	"name",
	"similarity",
	"skill_score",
	"experience_years",
	"experience_score",
	"final_score",
	"matched_skills",
}

// WriteCSV serializes the table, one row per candidate in ranked order.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, c := range t.Candidates {
		record := []string{
			c.Name,
			formatScore(c.Similarity),
			formatScore(c.SkillScore),
			formatScore(c.ExperienceYears),
			formatScore(c.ExperienceScore),
			formatScore(c.FinalScore),
			c.MatchedSkillsDisplay(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", c.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
