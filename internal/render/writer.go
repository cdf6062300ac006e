package render

import (
	"fmt"
	"os"
	"path/filepath"

	"silentslides/internal/domain"
)

// Write renders the plan with every renderer and saves each artifact as
// <base>_<timestamp>.<ext> under dir, creating dir as needed. It returns a
// map from renderer name to the written path.
func Write(dir, base string, plan *domain.DeckPlan, meta domain.RenderMeta, renderers []domain.Renderer) (map[string]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	stamp := meta.Generated.Format("20060102_150405")
	out := make(map[string]string, len(renderers))
	for _, r := range renderers {
		data, err := r.Render(plan, meta)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", r.Name(), err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", base, stamp, extFor(r.Name())))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		out[r.Name()] = path
	}
	return out, nil
}

func extFor(name string) string {
	switch name {
	case "markdown":
		return "md"
	case "html":
		return "html"
	case "json":
		return "json"
	default:
		return name
	}
}
