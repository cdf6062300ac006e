package tfidf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silentslides/internal/embedding/tfidf"
)

func TestPrepareEmptyCorpus(t *testing.T) {
	e := tfidf.New()
	assert.Error(t, e.Prepare(nil))
	assert.Error(t, e.Prepare([]string{"...", "the and of"}))
}

func TestEmbedBeforePrepare(t *testing.T) {
	e := tfidf.New()
	_, err := e.Embed("anything")
	assert.Error(t, err)
}

func TestEmbedDeterministic(t *testing.T) {
	corpus := []string{
		"revenue grew sharply last quarter",
		"costs also grew but slower",
		"profit margins held steady overall",
	}
	e := tfidf.New()
	require.NoError(t, e.Prepare(corpus))
	assert.Greater(t, e.Dimension(), 0)

	a, err := e.Embed(corpus[0])
	require.NoError(t, err)
	b, err := e.Embed(corpus[0])
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, e.Dimension())
}

func TestEmbedIsNormalized(t *testing.T) {
	e := tfidf.New()
	require.NoError(t, e.Prepare([]string{"alpha beta gamma", "beta gamma delta"}))

	vec, err := e.Embed("alpha beta gamma")
	require.NoError(t, err)
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestEmbedUnknownTokens(t *testing.T) {
	e := tfidf.New()
	require.NoError(t, e.Prepare([]string{"alpha beta gamma"}))

	vec, err := e.Embed("completely unrelated words")
	require.NoError(t, err)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}
