// Package cluster partitions sentence embeddings into groups of semantically
// related sentences. The partitioning algorithm is pluggable; noise points
// from density-based strategies are folded into one synthetic overflow
// cluster so that every sentence ends up assigned somewhere.
package cluster

import (
	"errors"
	"sort"

	"silentslides/internal/domain"
	"silentslides/internal/logging"
)

// DefaultMaxTopics caps the derived cluster count when no target is given.
const DefaultMaxTopics = 10

// Engine groups embedding vectors into clusters using the configured strategy.
type Engine struct {
	strategy  domain.Strategy
	maxTopics int
	log       *logging.Logger
}

// NewEngine creates a cluster engine. A nil logger discards output and a
// non-positive maxTopics falls back to DefaultMaxTopics.
func NewEngine(strategy domain.Strategy, maxTopics int, log *logging.Logger) *Engine {
	if maxTopics <= 0 {
		maxTopics = DefaultMaxTopics
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Engine{strategy: strategy, maxTopics: maxTopics, log: log}
}

// Cluster assigns every vector to exactly one cluster. Sentences are
// referenced by index into the caller's sentence list; index order is
// preserved within each cluster. A non-positive target derives a default
// from the input size. Fewer than two vectors short-circuit into a single
// cluster, since clustering is meaningless below that size.
func (e *Engine) Cluster(vectors [][]float64, target int) ([]domain.Cluster, error) {
	n := len(vectors)
	if n == 0 {
		return nil, errors.New("no vectors to cluster")
	}
	if n < 2 {
		e.log.Debug("only %d sentence(s); skipping clustering", n)
		return []domain.Cluster{{ID: domain.ClusterID{Index: 0}, Indices: allIndices(n)}}, nil
	}
	if target <= 0 {
		target = defaultTarget(n, e.maxTopics)
	}

	labels, err := e.strategy.Assign(vectors, target)
	if err != nil {
		return nil, err
	}
	if len(labels) != n {
		return nil, errors.New("strategy returned wrong label count")
	}

	clusters := group(labels)
	e.log.Debug("strategy %s produced %d cluster(s) from %d sentences", e.strategy.Name(), len(clusters), n)
	return clusters, nil
}

// group folds labels into clusters ordered by ascending id, keeping
// original index order inside each cluster. Noise labels (-1) become one
// overflow cluster with index one past the highest observed label.
func group(labels []int) []domain.Cluster {
	byLabel := make(map[int][]int)
	var noise []int
	maxLabel := -1
	for i, label := range labels {
		if label < 0 {
			noise = append(noise, i)
			continue
		}
		byLabel[label] = append(byLabel[label], i)
		if label > maxLabel {
			maxLabel = label
		}
	}

	ids := make([]int, 0, len(byLabel))
	for label := range byLabel {
		ids = append(ids, label)
	}
	sort.Ints(ids)

	clusters := make([]domain.Cluster, 0, len(ids)+1)
	for _, label := range ids {
		clusters = append(clusters, domain.Cluster{ID: domain.ClusterID{Index: label}, Indices: byLabel[label]})
	}
	if len(noise) > 0 {
		clusters = append(clusters, domain.Cluster{
			ID:      domain.ClusterID{Index: maxLabel + 1, Overflow: true},
			Indices: noise,
		})
	}
	return clusters
}

// defaultTarget balances granularity against the topic cap: one cluster per
// five sentences, at least two, never more than maxTopics.
func defaultTarget(n, maxTopics int) int {
	target := n / 5
	if target < 2 {
		target = 2
	}
	if target > maxTopics {
		target = maxTopics
	}
	return target
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
