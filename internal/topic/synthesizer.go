// Package topic turns one cluster of sentences into a short title and a
// ranked, bounded list of bullet statements. Centrality to the cluster mean
// stands in for representativeness: no language generation involved.
package topic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"silentslides/internal/vecmath"
)

// DefaultMaxBullets bounds the bullet list when the caller passes no limit.
const DefaultMaxBullets = 5

const titleTokenLimit = 6

// Synthesizer derives titles and bullet lists from cluster members.
type Synthesizer struct{}

// NewSynthesizer creates a topic synthesizer.
func NewSynthesizer() *Synthesizer { return &Synthesizer{} }

// Title returns the shortened most central sentence of the cluster.
// A singleton cluster titles itself. Ties on centrality resolve to the
// earliest sentence.
func (s *Synthesizer) Title(sentences []string, vectors [][]float64) (string, error) {
	if err := validate(sentences, vectors); err != nil {
		return "", err
	}
	if len(sentences) == 1 {
		return shorten(sentences[0]), nil
	}
	scores := centrality(vectors)
	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	return shorten(sentences[best]), nil
}

// Bullets selects up to maxBullets sentences. Clusters at or under the limit
// pass through untouched in original order; larger clusters are ranked by
// centrality, most central first, with ties kept in original order.
func (s *Synthesizer) Bullets(sentences []string, vectors [][]float64, maxBullets int) ([]string, error) {
	if err := validate(sentences, vectors); err != nil {
		return nil, err
	}
	if maxBullets <= 0 {
		maxBullets = DefaultMaxBullets
	}
	if len(sentences) <= maxBullets {
		return append([]string(nil), sentences...), nil
	}

	scores := centrality(vectors)
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	bullets := make([]string, 0, maxBullets)
	for _, idx := range order[:maxBullets] {
		bullets = append(bullets, sentences[idx])
	}
	return bullets, nil
}

// centrality scores every sentence by cosine similarity to the cluster mean.
func centrality(vectors [][]float64) []float64 {
	centroid := vecmath.Centroid(vectors)
	scores := make([]float64, len(vectors))
	for i, v := range vectors {
		scores[i] = vecmath.Cosine(v, centroid)
	}
	return scores
}

// shorten trims a sentence down to title length: short sentences only lose
// trailing punctuation, longer ones keep their first tokens plus an ellipsis.
func shorten(sentence string) string {
	words := strings.Fields(sentence)
	if len(words) <= titleTokenLimit {
		return strings.TrimRight(sentence, ".,!?")
	}
	return strings.Join(words[:titleTokenLimit], " ") + "..."
}

// validate rejects malformed cluster state: an empty cluster, a sentence
// without a vector, or vectors of differing dimension.
func validate(sentences []string, vectors [][]float64) error {
	if len(sentences) == 0 {
		return errors.New("empty cluster")
	}
	if len(sentences) != len(vectors) {
		return fmt.Errorf("cluster has %d sentences but %d vectors", len(sentences), len(vectors))
	}
	dim := len(vectors[0])
	if dim == 0 {
		return errors.New("zero-dimension embedding")
	}
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}
	return nil
}
