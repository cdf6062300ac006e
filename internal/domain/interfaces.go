package domain

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
// Dimension is fixed for the lifetime of a run once Prepare has been called.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// Strategy assigns a cluster label to every vector. A label of -1 marks a
// noise point that the algorithm could not place in any dense group; the
// engine folds those into one overflow cluster. The target is a hint for
// partitional algorithms and may be ignored.
type Strategy interface {
	Name() string
	Assign(vectors [][]float64, target int) ([]int, error)
}

// Renderer serializes a deck plan into one output format.
type Renderer interface {
	Name() string
	Render(plan *DeckPlan, meta RenderMeta) ([]byte, error)
}
