package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_StripsPunctuationAndCase(t *testing.T) {
	got := Clean("Senior Engineer (Python/SQL) — 5+ years!")
	assert.Equal(t, "senior engineer python sql 5 years", got)
}

func TestClean_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \t\n  "))
	assert.Equal(t, "", Clean("!!! ---"))
}

func TestCleaner_DropsStopWords(t *testing.T) {
	got := Cleaner{}.Normalize("Looking for a Python developer with experience in SQL")
	assert.Equal(t, "looking python developer experience sql", got)
}

func TestCleaner_KeepsDigits(t *testing.T) {
	got := Cleaner{}.Normalize("3+ years of Go")
	assert.Equal(t, "3 years go", got)
}

func TestCleaner_Deterministic(t *testing.T) {
	input := "The same INPUT, twice."
	assert.Equal(t, Cleaner{}.Normalize(input), Cleaner{}.Normalize(input))
}
