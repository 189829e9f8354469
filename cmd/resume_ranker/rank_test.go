package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/embedding"
	"github.com/jonathan/resume-ranker/internal/experience"
)

func TestDefaultConfig_FillsUnsetValues(t *testing.T) {
	cfg := config.Config{}

	merged := cfg.MergeWithDefaults(defaultConfig())

	assert.Equal(t, embedding.DefaultModel, merged.Model)
	assert.Equal(t, experience.DefaultCap, merged.ExperienceCap)
}

func TestDefaultConfig_KeepsExplicitValues(t *testing.T) {
	cfg := config.Config{
		Model:         "BAAI/bge-small-en-v1.5",
		ExperienceCap: 15,
	}

	merged := cfg.MergeWithDefaults(defaultConfig())

	assert.Equal(t, "BAAI/bge-small-en-v1.5", merged.Model)
	assert.Equal(t, 15.0, merged.ExperienceCap)
}

func TestCollectResumePaths_DirScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.MD"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.pdf"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	paths, err := collectResumePaths(config.Config{ResumeDir: dir})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.MD"),
	}, paths)
}

func TestCollectResumePaths_ExplicitAndDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	paths, err := collectResumePaths(config.Config{
		Resumes:   []string{"explicit.txt"},
		ResumeDir: dir,
	})
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	assert.Contains(t, paths, "explicit.txt")
}

func TestCollectResumePaths_MissingDir(t *testing.T) {
	_, err := collectResumePaths(config.Config{ResumeDir: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestLoadJDText_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python developer wanted"), 0o644))

	text, err := loadJDText(context.Background(), config.Config{JD: path})
	require.NoError(t, err)
	assert.Equal(t, "Python developer wanted", text)
}

func TestLoadJDText_EmptyAllowed(t *testing.T) {
	text, err := loadJDText(context.Background(), config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
