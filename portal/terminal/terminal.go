// Package terminal renders the landing page for a terminal: cards styled with
// lipgloss and the Markdown explanation rendered by glamour.
package terminal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/viant/designsuite/portal/page"
)

const defaultWidth = 100

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Previewer renders pages as styled terminal text.
type Previewer struct {
	width    int
	style    string
	markdown []byte
}

// Option customises a Previewer.
type Option func(*Previewer)

// WithWidth sets the total render width in cells.
func WithWidth(width int) Option {
	return func(p *Previewer) {
		if width > 0 {
			p.width = width
		}
	}
}

// WithStyle selects a glamour standard style ("dark", "light", "notty", ...).
func WithStyle(style string) Option {
	return func(p *Previewer) { p.style = style }
}

// WithMarkdown replaces the built-in explanation Markdown.
func WithMarkdown(markdown []byte) Option {
	return func(p *Previewer) { p.markdown = markdown }
}

// New returns a Previewer using the dark glamour style at 100 cells unless
// options say otherwise.
func New(opts ...Option) *Previewer {
	p := &Previewer{width: defaultWidth, style: "dark", markdown: page.WorkflowMarkdown()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render returns the terminal rendering of pg.
func (p *Previewer) Render(pg *page.Page) (string, error) {
	st := newStyles(portal, p.width)
	rule := st.rule.Render(strings.Repeat("─", p.width))

	var b strings.Builder
	b.WriteString(st.title.Render(pg.Title) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(st.header.Render(pg.Header) + "\n")
	b.WriteString(st.text.Render(pg.Tagline) + "\n\n")

	cards := make([]string, 0, len(pg.Cards))
	for _, card := range pg.Cards {
		cards = append(cards, p.card(st, card))
	}
	b.WriteString(p.layout(cards) + "\n")
	b.WriteString(rule + "\n")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(p.style),
		glamour.WithWordWrap(p.width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	explanation, err := renderer.Render("## " + pg.ExplanationHeader + "\n\n" + string(p.markdown))
	if err != nil {
		return "", fmt.Errorf("render explanation: %w", err)
	}
	b.WriteString(explanation)
	b.WriteString(rule + "\n")
	b.WriteString(st.caption.Render(pg.Caption) + "\n")
	return b.String(), nil
}

func (p *Previewer) card(st styles, card page.Card) string {
	title := card.Title
	if card.Icon != "" {
		title = card.Icon + " " + title
	}
	lines := []string{st.heading.Render(title), "", plain(string(card.Summary))}
	if card.Output != "" {
		lines = append(lines, "", "Output: "+plain(string(card.Output)))
	}
	lines = append(lines, "")
	if card.Link.Active {
		lines = append(lines, st.button.Render(card.Link.Label), card.Link.Href)
	} else {
		lines = append(lines, st.warning.Render("⚠ "+card.Link.Warning))
	}
	return st.card.Render(strings.Join(lines, "\n"))
}

// layout places cards side by side in pairs.
func (p *Previewer) layout(cards []string) string {
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) && p.width >= 52 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], "  ", cards[i+1]))
			continue
		}
		rows = append(rows, cards[i])
		if i+1 < len(cards) {
			rows = append(rows, cards[i+1])
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// plain turns the small HTML subset used in card copy into terminal text.
func plain(html string) string {
	html = strings.NewReplacer("<code>", "`", "</code>", "`", "<br>", "\n", "<br/>", "\n").Replace(html)
	return tagPattern.ReplaceAllString(html, "")
}
