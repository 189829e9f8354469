package ranking

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	table := Table{Candidates: []Candidate{
		{
			Name:            "jane.txt",
			Path:            "/resumes/jane.txt",
			Similarity:      0.8123,
			SkillScore:      1,
			ExperienceYears: 5,
			ExperienceScore: 0.5,
			FinalScore:      0.837,
			MatchedSkills:   []string{"python", "sql"},
		},
		{
			Name:       "john.txt",
			Path:       "/resumes/john.txt",
			FinalScore: 0.1,
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"jane.txt", "0.8123", "1", "5", "0.5", "0.837", "python, sql"}, rows[1])
	assert.Equal(t, []string{"john.txt", "0", "0", "0", "0", "0.1", ""}, rows[2])
}

func TestWriteCSV_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table{}.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
