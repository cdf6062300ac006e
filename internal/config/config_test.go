package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "density", cfg.Pipeline.Clustering)
	assert.Equal(t, 2, cfg.Pipeline.MinClusterSize)
	assert.Equal(t, 10, cfg.Pipeline.MaxTopics)
	assert.Equal(t, 5, cfg.Pipeline.MaxBullets)
	assert.Equal(t, "tfidf", cfg.Embedder.Type)
	assert.Equal(t, []string{"eng"}, cfg.OCR.Languages)
	assert.Equal(t, []string{"markdown", "json"}, cfg.Render.Formats)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pipeline:
  clustering: kmeans
  target_clusters: 4
render:
  deck_title: Board Update
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "kmeans", cfg.Pipeline.Clustering)
	assert.Equal(t, 4, cfg.Pipeline.TargetClusters)
	assert.Equal(t, "Board Update", cfg.Render.DeckTitle)
	// Unset fields fall back to defaults.
	assert.Equal(t, 5, cfg.Pipeline.MaxBullets)
	assert.Equal(t, "tfidf", cfg.Embedder.Type)
	assert.Equal(t, "output", cfg.Render.OutputDir)
}

func TestLoadOpenAIDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
embedder:
  type: openai
  openai:
    model: text-embedding-3-large
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, "text-embedding-3-large", cfg.Embedder.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Embedder.OpenAI.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Embedder.OpenAI.APIKeyEnv)
	assert.Equal(t, 30, cfg.Embedder.OpenAI.TimeoutSecs)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Pipeline.TargetClusters = 7
	cfg.Render.Formats = []string{"html"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
