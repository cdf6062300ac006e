package pipeline_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silentslides/internal/cluster"
	"silentslides/internal/pipeline"
	"silentslides/internal/segment"
)

// stubEmbedder returns fixed vectors keyed by sentence, making every run
// fully deterministic.
type stubEmbedder struct {
	vectors map[string][]float64
}

func (s *stubEmbedder) Name() string                { return "stub" }
func (s *stubEmbedder) Prepare(corpus []string) error { return nil }

func (s *stubEmbedder) Dimension() int {
	for _, v := range s.vectors {
		return len(v)
	}
	return 0
}

func (s *stubEmbedder) Embed(text string) ([]float64, error) {
	v, ok := s.vectors[text]
	if !ok {
		return nil, errors.New("unknown sentence: " + text)
	}
	return v, nil
}

// failingEmbedder simulates an unavailable embedding model.
type failingEmbedder struct{}

func (failingEmbedder) Name() string                  { return "failing" }
func (failingEmbedder) Prepare(corpus []string) error { return errors.New("model unavailable") }
func (failingEmbedder) Dimension() int                { return 0 }
func (failingEmbedder) Embed(string) ([]float64, error) {
	return nil, errors.New("model unavailable")
}

func newPipeline(emb *stubEmbedder) *pipeline.Pipeline {
	engine := cluster.NewEngine(cluster.NewDensity(2), 10, nil)
	return pipeline.New(segment.New(), emb, engine, 0, 5, nil)
}

func TestProcessEmptyInput(t *testing.T) {
	p := newPipeline(&stubEmbedder{})

	for _, raw := range []string{"", "   \n\t ", "...!!!"} {
		plan, err := p.Process(raw)
		require.NoError(t, err)
		assert.Empty(t, plan.Topics)
		assert.Zero(t, plan.TotalSentences)
		assert.Equal(t, 2, plan.SlideCount)
	}
}

func TestProcessShortInput(t *testing.T) {
	p := newPipeline(&stubEmbedder{})

	// Two tokens fall under the sentence floor, so nothing survives.
	plan, err := p.Process("Hi there.")
	require.NoError(t, err)
	assert.Empty(t, plan.Topics)
	assert.Zero(t, plan.TotalSentences)
	assert.Equal(t, 2, plan.SlideCount)
}

func TestProcessSingleTopic(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float64{
		"Revenue grew sharply": {1, 0},
		"Costs also grew":      {1, 0},
		"Profit margins held":  {1, 0},
	}}
	p := newPipeline(emb)

	plan, err := p.Process("Revenue grew sharply. Costs also grew. Profit margins held.")
	require.NoError(t, err)

	require.Len(t, plan.Topics, 1)
	assert.Equal(t, 3, plan.TotalSentences)
	assert.Equal(t, 3, plan.SlideCount)

	topic := plan.Topics[0]
	assert.Equal(t, 0, topic.ID)
	assert.Equal(t, 3, topic.SentenceCount)
	// The centrality tie resolves to the first sentence.
	assert.Equal(t, "Revenue grew sharply", topic.Title)
	// At or under the bullet cap, original order is preserved.
	assert.Equal(t, []string{"Revenue grew sharply", "Costs also grew", "Profit margins held"}, topic.Bullets)
}

func TestProcessMultipleTopicsWithNoise(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float64{
		"Revenue grew fast":      {0, 0},
		"Revenue beat forecasts": {0, 0.1},
		"Revenue doubled again":  {0.1, 0},
		"Revenue keeps climbing": {0.1, 0.1},
		"Costs stayed flat":      {10, 10},
		"Costs were contained":   {10, 10.1},
		"Costs fell slightly":    {10.1, 10},
		"The weather was nice":   {50, 50},
	}}
	p := newPipeline(emb)

	plan, err := p.Process(
		"Revenue grew fast. Revenue beat forecasts. Revenue doubled again. Revenue keeps climbing. " +
			"Costs stayed flat. Costs were contained. Costs fell slightly. The weather was nice.")
	require.NoError(t, err)

	assert.Equal(t, 8, plan.TotalSentences)
	require.Len(t, plan.Topics, 3)
	assert.Equal(t, len(plan.Topics)+2, plan.SlideCount)

	// Topics sorted by size, descending; no sentence lost.
	sum := 0
	prev := plan.Topics[0].SentenceCount
	for _, topic := range plan.Topics {
		assert.LessOrEqual(t, topic.SentenceCount, prev)
		prev = topic.SentenceCount
		sum += topic.SentenceCount
		assert.LessOrEqual(t, len(topic.Bullets), 5)
	}
	assert.Equal(t, plan.TotalSentences, sum)

	// The lone off-topic sentence lands in the overflow bucket, id max+1.
	last := plan.Topics[len(plan.Topics)-1]
	assert.Equal(t, 2, last.ID)
	assert.Equal(t, 1, last.SentenceCount)
	assert.Equal(t, []string{"The weather was nice"}, last.Bullets)
}

func TestProcessIdempotentWithKMeans(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float64{
		"Alpha topic sentence one":  {0, 0},
		"Alpha topic sentence two":  {0, 0.1},
		"Alpha topic sentence tre":  {0.1, 0},
		"Beta topic sentence one":   {5, 5},
		"Beta topic sentence two":   {5, 5.1},
		"Beta topic sentence three": {5.1, 5},
	}}
	raw := "Alpha topic sentence one. Alpha topic sentence two. Alpha topic sentence tre. " +
		"Beta topic sentence one. Beta topic sentence two. Beta topic sentence three."

	engine := cluster.NewEngine(cluster.NewKMeans(), 10, nil)
	p := pipeline.New(segment.New(), emb, engine, 0, 5, nil)

	first, err := p.Process(raw)
	require.NoError(t, err)
	second, err := p.Process(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProcessEmbeddingFailure(t *testing.T) {
	engine := cluster.NewEngine(cluster.NewDensity(2), 10, nil)
	p := pipeline.New(segment.New(), failingEmbedder{}, engine, 0, 5, nil)

	_, err := p.Process("This text has plenty of words. It should reach the embedder.")
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrEmbedding)
}

func TestProcessDimensionMismatch(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float64{
		"First sentence with words":  {1, 0},
		"Second sentence with words": {1, 0, 0},
	}}
	p := newPipeline(emb)

	_, err := p.Process("First sentence with words. Second sentence with words.")
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrEmbedding)
}
