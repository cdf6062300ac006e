package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"

	"silentslides/internal/domain"
)

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; color: #333; }
h1 { color: #1a1a1a; }
h2 { color: #1a1a1a; border-bottom: 2px solid #0066cc; padding-bottom: 0.3rem; }
hr { border: none; border-top: 1px solid #ddd; margin: 2rem 0; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the deck by converting the markdown outline and wrapping it
// in a minimal standalone page.
type HTML struct {
	md goldmark.Markdown
}

// NewHTML creates an HTML renderer.
func NewHTML() *HTML {
	return &HTML{md: goldmark.New()}
}

func (*HTML) Name() string { return "html" }

func (h *HTML) Render(plan *domain.DeckPlan, meta domain.RenderMeta) ([]byte, error) {
	source, err := Markdown{}.Render(plan, meta)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := h.md.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	page := fmt.Sprintf(htmlShell, html.EscapeString(meta.Title), body.String())
	return []byte(page), nil
}
