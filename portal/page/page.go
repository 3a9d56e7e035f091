package page

import (
	"html"
	"html/template"

	"github.com/viant/designsuite/portal/config"
	"github.com/viant/designsuite/portal/module"
)

const (
	defaultHeader            = "System Modules"
	defaultTagline           = "Navigate through our intelligent tools to bring your architectural visions to life, from initial concept to standards-aware analysis."
	defaultExplanationHeader = "How These Modules Work Together"
)

// Card is the view of one module.
type Card struct {
	ID      string
	Icon    string
	Title   string
	Summary template.HTML
	Output  template.HTML
	Link    module.Link
	// Href is the complete href attribute of an active link. It carries the
	// configured URL verbatim, whatever its scheme.
	Href template.HTMLAttr
}

// Page is the immutable view model of the landing page.
type Page struct {
	PageTitle         string
	Title             string
	Header            string
	Tagline           string
	Cards             []Card
	ExplanationHeader string
	Caption           string

	// filled by the Renderer
	CSS         template.CSS
	Explanation template.HTML
}

// New builds the page for the given configuration.
func New(cfg *config.Config) *Page {
	return NewWithRegistry(cfg, cfg.Registry())
}

// NewWithRegistry builds the page using an already resolved registry. Module
// summaries and outputs come from the configuration author and are trusted
// as HTML.
func NewWithRegistry(cfg *config.Config, registry *module.Registry) *Page {
	p := &Page{
		PageTitle:         cfg.PageTitle,
		Title:             cfg.Title,
		Header:            defaultHeader,
		Tagline:           defaultTagline,
		ExplanationHeader: defaultExplanationHeader,
		Caption:           cfg.Caption,
	}
	for _, m := range registry.Modules() {
		card := Card{
			ID:      m.ID,
			Icon:    m.Icon,
			Title:   m.Title,
			Summary: template.HTML(m.Summary),
			Output:  template.HTML(m.Output),
			Link:    m.Link(),
		}
		if card.Link.Active {
			card.Href = hrefAttr(card.Link.Href)
		}
		p.Cards = append(p.Cards, card)
	}
	return p
}

// hrefAttr builds an href attribute that only entity-escapes URL, so the
// browser navigates to exactly the configured value.
func hrefAttr(URL string) template.HTMLAttr {
	return template.HTMLAttr(`href="` + html.EscapeString(URL) + `"`)
}
