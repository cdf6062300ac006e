// Package render is the downstream collaborator boundary: it serializes a
// deck plan into presentation-ready artifacts. The pipeline itself knows
// nothing about output formats.
package render

import (
	"fmt"
	"strings"

	"silentslides/internal/domain"
)

// Markdown renders the deck as a slide-per-separator markdown outline.
type Markdown struct{}

func (Markdown) Name() string { return "markdown" }

// Render produces a title slide, one slide per topic and a summary slide,
// separated by horizontal rules.
func (Markdown) Render(plan *domain.DeckPlan, meta domain.RenderMeta) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meta.Title)
	fmt.Fprintf(&b, "*Generated on %s*\n\n---\n\n", meta.Generated.Format("January 2, 2006"))

	for _, topic := range plan.Topics {
		fmt.Fprintf(&b, "## %s\n\n", topic.Title)
		for _, bullet := range topic.Bullets {
			fmt.Fprintf(&b, "- %s\n", bullet)
		}
		b.WriteString("\n---\n\n")
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "Generated %d topics from %d sentences.\n", len(plan.Topics), plan.TotalSentences)
	if meta.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", meta.Summary)
	}

	return []byte(b.String()), nil
}
