// Package tui previews the generated deck in the terminal, one slide at a
// time.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"silentslides/internal/domain"
)

type slide struct {
	heading string
	body    string
}

// Model is the Bubble Tea model for the slide preview.
type Model struct {
	deckTitle string
	slides    []slide
	cursor    int
	viewport  viewport.Model
	ready     bool
}

// New builds a preview over the plan: title slide, one slide per topic and
// a summary slide.
func New(plan *domain.DeckPlan, meta domain.RenderMeta) Model {
	slides := make([]slide, 0, len(plan.Topics)+2)
	slides = append(slides, slide{
		heading: meta.Title,
		body:    "Generated on " + meta.Generated.Format("January 2, 2006"),
	})
	for _, topic := range plan.Topics {
		var b strings.Builder
		for _, bullet := range topic.Bullets {
			b.WriteString("• ")
			b.WriteString(bullet)
			b.WriteString("\n")
		}
		slides = append(slides, slide{heading: topic.Title, body: b.String()})
	}
	summaryBody := fmt.Sprintf("Generated %d topics from %d sentences.", len(plan.Topics), plan.TotalSentences)
	if meta.Summary != "" {
		summaryBody += "\n\n" + meta.Summary
	}
	slides = append(slides, slide{heading: "Summary", body: summaryBody})

	return Model{deckTitle: meta.Title, slides: slides, viewport: viewport.New(0, 0)}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, frameH := slideBoxStyle.GetFrameSize()
		reserved := 2 + frameH // header + help line
		height := msg.Height - reserved
		if height < 3 {
			height = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = height
		m.viewport.SetContent(m.renderSlide())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "right", "l", " ", "enter":
			if m.cursor < len(m.slides)-1 {
				m.cursor++
				m.viewport.SetContent(m.renderSlide())
			}
			return m, nil
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
				m.viewport.SetContent(m.renderSlide())
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the header, the framed current slide and a help line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render(m.deckTitle) +
		counterStyle.Render(fmt.Sprintf("  slide %d/%d", m.cursor+1, len(m.slides)))
	help := helpStyle.Render("←/→ navigate · q quit")
	return header + "\n" + slideBoxStyle.Render(m.viewport.View()) + "\n" + help
}

func (m Model) renderSlide() string {
	s := m.slides[m.cursor]
	out := headingStyle.Render(s.heading)
	if s.body != "" {
		out += "\n\n" + s.body
	}
	return out
}

var (
	slideBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	headerStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	counterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
