package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	catalog := Load("")

	assert.NotEmpty(t, catalog)
	assert.Contains(t, catalog.Terms(), "python")
	assert.Contains(t, catalog.Terms(), "kubernetes")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	catalog := Load(filepath.Join(t.TempDir(), "nope.txt"))

	assert.NotEmpty(t, catalog)
	assert.Contains(t, catalog.Terms(), "sql")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	content := "Rust\n\n  Terraform  \nelixir\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog := Load(path)

	assert.Equal(t, []string{"elixir", "rust", "terraform"}, catalog.Terms())
	// User file replaces the defaults entirely
	assert.NotContains(t, catalog.Terms(), "python")
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n  \n"), 0o644))

	catalog := Load(path)

	assert.Contains(t, catalog.Terms(), "python")
}

func TestLoad_DeduplicatesTerms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	require.NoError(t, os.WriteFile(path, []byte("Go\ngo\nGO\n"), 0o644))

	catalog := Load(path)

	assert.Equal(t, []string{"go"}, catalog.Terms())
}
