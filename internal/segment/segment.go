package segment

import (
	"regexp"
	"strings"
)

// Segmenter normalizes raw text and splits it into candidate sentences,
// filtering out fragments too short to carry meaning.
type Segmenter struct {
	minTokens int
	spaces    *regexp.Regexp
	noise     *regexp.Regexp
	boundary  *regexp.Regexp
}

// New creates a segmenter with the default 3-token sentence floor.
func New() *Segmenter { return NewWithMinTokens(3) }

// NewWithMinTokens creates a segmenter dropping sentences shorter than
// minTokens whitespace-delimited tokens.
func NewWithMinTokens(minTokens int) *Segmenter {
	if minTokens < 1 {
		minTokens = 1
	}
	return &Segmenter{
		minTokens: minTokens,
		spaces:    regexp.MustCompile(`\s+`),
		noise:     regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?-]`),
		boundary:  regexp.MustCompile(`[.!?]+`),
	}
}

// Clean collapses whitespace runs to single spaces and strips characters
// outside word characters, whitespace and the retained punctuation set.
func (s *Segmenter) Clean(raw string) string {
	text := s.spaces.ReplaceAllString(raw, " ")
	text = s.noise.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Segment cleans raw text and splits it into sentences on runs of
// terminal punctuation. Fragments below the token floor are dropped.
// Order follows first appearance in the source; noise-only input yields nil.
func (s *Segmenter) Segment(raw string) []string {
	cleaned := s.Clean(raw)
	if cleaned == "" {
		return nil
	}
	var sentences []string
	for _, part := range s.boundary.Split(cleaned, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len(strings.Fields(part)) < s.minTokens {
			continue
		}
		sentences = append(sentences, part)
	}
	return sentences
}
