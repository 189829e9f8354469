package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_Identical(t *testing.T) {
	v := []float32{0.5, 0.5, 0.5}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarity_Opposite(t *testing.T) {
	a := []float32{1, 2}
	b := []float32{-1, -2}
	assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		a := randomVector(rng, 8)
		b := randomVector(rng, 8)
		assert.InDelta(t, CosineSimilarity(a, b), CosineSimilarity(b, a), 1e-12)
	}
}

func TestCosineSimilarity_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, []float32{1, 2}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{}, []float32{}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}

func TestSkillOverlap_EmptyJDSkills(t *testing.T) {
	assert.Equal(t, 0.0, SkillOverlap(nil, []string{"python", "sql"}))
	assert.Equal(t, 0.0, SkillOverlap([]string{}, []string{"python"}))
}

func TestSkillOverlap_FullAndPartial(t *testing.T) {
	jd := []string{"python", "sql"}
	assert.Equal(t, 1.0, SkillOverlap(jd, []string{"python", "sql", "go"}))
	assert.Equal(t, 0.5, SkillOverlap(jd, []string{"python"}))
	assert.Equal(t, 0.0, SkillOverlap(jd, []string{"go"}))
	assert.Equal(t, 0.0, SkillOverlap(jd, nil))
}

func TestSkillOverlap_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, SkillOverlap([]string{"Python"}, []string{"PYTHON"}))
}

func TestSkillOverlap_SetSemantics(t *testing.T) {
	// Duplicate JD skills count once in the denominator.
	jd := []string{"python", "Python", "sql"}
	assert.Equal(t, 0.5, SkillOverlap(jd, []string{"python"}))
}

func TestCombine_WeightedFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		sim := rng.Float64()
		skill := rng.Float64()
		exp := rng.Float64()

		want := math.Round((0.6*sim+0.3*skill+0.1*exp)*1000) / 1000
		assert.Equal(t, want, Combine(sim, skill, exp))
	}
}

func TestCombine_Rounding(t *testing.T) {
	assert.Equal(t, 0.95, Combine(1.0, 1.0, 0.5))
	assert.Equal(t, 0.0, Combine(0, 0, 0))
	assert.Equal(t, 1.0, Combine(1, 1, 1))
}

func randomVector(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return v
}
