// Package pipeline sequences the analysis stages: segment, embed, cluster,
// synthesize, and assembles the final deck plan.
package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"silentslides/internal/cluster"
	"silentslides/internal/domain"
	"silentslides/internal/logging"
	"silentslides/internal/segment"
	"silentslides/internal/topic"
)

// ErrEmbedding marks a run that failed because the embedding provider could
// not produce vectors. There is no partial-result fallback.
var ErrEmbedding = errors.New("embedding provider failed")

// Pipeline runs the full text-to-topics analysis. It holds no per-run state
// and is safe to reuse across runs as long as the embedder tolerates
// concurrent read-only use.
type Pipeline struct {
	segmenter      *segment.Segmenter
	embedder       domain.Embedder
	engine         *cluster.Engine
	synth          *topic.Synthesizer
	targetClusters int
	maxBullets     int
	log            *logging.Logger
}

// New assembles a pipeline from its stages. A non-positive targetClusters
// lets the engine derive a count from the input size; a non-positive
// maxBullets falls back to the synthesizer default. A nil logger discards
// output.
func New(segmenter *segment.Segmenter, embedder domain.Embedder, engine *cluster.Engine, targetClusters, maxBullets int, log *logging.Logger) *Pipeline {
	if maxBullets <= 0 {
		maxBullets = topic.DefaultMaxBullets
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Pipeline{
		segmenter:      segmenter,
		embedder:       embedder,
		engine:         engine,
		synth:          topic.NewSynthesizer(),
		targetClusters: targetClusters,
		maxBullets:     maxBullets,
		log:            log,
	}
}

// Process turns raw text into a deck plan. Text yielding zero usable
// sentences is not an error: the result then has no topics and reserves
// only the title and summary slides. Embedding failures and cluster
// invariant violations abort the whole run.
func (p *Pipeline) Process(raw string) (*domain.DeckPlan, error) {
	sentences := p.segmenter.Segment(raw)
	if len(sentences) == 0 {
		p.log.Debug("no usable sentences after cleaning")
		return &domain.DeckPlan{Topics: []domain.Topic{}, TotalSentences: 0, SlideCount: 2}, nil
	}
	p.log.Info("segmented %d sentence(s)", len(sentences))

	vectors, err := p.embedAll(sentences)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbedding, err)
	}

	clusters, err := p.engine.Cluster(vectors, p.targetClusters)
	if err != nil {
		return nil, err
	}

	topics := make([]domain.Topic, 0, len(clusters))
	for _, c := range clusters {
		members := make([]string, 0, len(c.Indices))
		memberVecs := make([][]float64, 0, len(c.Indices))
		for _, idx := range c.Indices {
			members = append(members, sentences[idx])
			memberVecs = append(memberVecs, vectors[idx])
		}

		title, err := p.synth.Title(members, memberVecs)
		if err != nil {
			return nil, fmt.Errorf("synthesize title for cluster %d: %w", c.ID.Index, err)
		}
		bullets, err := p.synth.Bullets(members, memberVecs, p.maxBullets)
		if err != nil {
			return nil, fmt.Errorf("rank bullets for cluster %d: %w", c.ID.Index, err)
		}
		topics = append(topics, domain.Topic{
			ID:            c.ID.Index,
			Title:         title,
			Bullets:       bullets,
			SentenceCount: len(c.Indices),
		})
	}

	// Largest topics first; ties keep cluster-id order from discovery.
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].SentenceCount > topics[j].SentenceCount
	})

	return &domain.DeckPlan{
		Topics:         topics,
		TotalSentences: len(sentences),
		SlideCount:     len(topics) + 2,
	}, nil
}

// embedAll prepares the embedder over the sentence corpus and embeds each
// sentence in order. All vectors must share one dimension.
func (p *Pipeline) embedAll(sentences []string) ([][]float64, error) {
	if err := p.embedder.Prepare(sentences); err != nil {
		return nil, err
	}
	vectors := make([][]float64, len(sentences))
	dim := 0
	for i, sentence := range sentences {
		v, err := p.embedder.Embed(sentence)
		if err != nil {
			return nil, err
		}
		if len(v) == 0 {
			return nil, fmt.Errorf("empty embedding for sentence %d", i)
		}
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim {
			return nil, fmt.Errorf("embedding dimension changed from %d to %d at sentence %d", dim, len(v), i)
		}
		vectors[i] = v
	}
	return vectors, nil
}
