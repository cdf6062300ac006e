// Package summary produces the short extractive summary shown on the deck's
// closing slide.
package summary

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	wordPattern     = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
	sentencePattern = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)
)

// FrequencySummarizer ranks sentences by normalized token frequency with
// stopwords removed and a length damping factor, then returns the top
// sentences in their original order.
type FrequencySummarizer struct {
	stopwords map[string]struct{}
}

// New creates a frequency-based summarizer.
func New() *FrequencySummarizer {
	return &FrequencySummarizer{stopwords: stopwords()}
}

// Summarize returns up to maxSentences of text joined with spaces.
// Text without sentence punctuation is returned trimmed as-is.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	sentences := sentencePattern.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}

	freq := s.frequencies(sentences)
	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		ranked[i] = scored{i, s.score(sentence, freq)}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	if maxSentences > len(ranked) {
		maxSentences = len(ranked)
	}
	keep := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		keep[i] = ranked[i].idx
	}
	sort.Ints(keep)

	parts := make([]string, 0, len(keep))
	for _, idx := range keep {
		parts = append(parts, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(parts, " ")
}

// frequencies counts non-stopword tokens across all sentences, normalized
// by the most frequent token.
func (s *FrequencySummarizer) frequencies(sentences []string) map[string]float64 {
	freq := make(map[string]float64)
	for _, sentence := range sentences {
		for _, tok := range s.tokens(sentence) {
			freq[tok]++
		}
	}
	peak := 0.0
	for _, v := range freq {
		if v > peak {
			peak = v
		}
	}
	if peak > 0 {
		for k := range freq {
			freq[k] /= peak
		}
	}
	return freq
}

func (s *FrequencySummarizer) score(sentence string, freq map[string]float64) float64 {
	tokens := s.tokens(sentence)
	if len(tokens) == 0 {
		return 0
	}
	total := 0.0
	for _, tok := range tokens {
		total += freq[tok]
	}
	// Dampen by length so long sentences do not win on volume alone.
	return total / math.Sqrt(float64(len(tokens)))
}

func (s *FrequencySummarizer) tokens(text string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, tok := range raw {
		if _, stop := s.stopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func stopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
