package render

import (
	"encoding/json"

	"silentslides/internal/domain"
)

// JSON renders the deck plan in the wire shape downstream tools consume:
// {topics: [{id, title, bullets, sentenceCount}], totalSentences, slideCount}.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Render(plan *domain.DeckPlan, _ domain.RenderMeta) ([]byte, error) {
	return json.MarshalIndent(plan, "", "  ")
}
