package page

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/viant/afs"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer writes the landing page as HTML.
type Renderer struct {
	text        string
	css         string
	markdown    []byte
	tmpl        *template.Template
	explanation template.HTML
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithTemplate replaces the built-in page template.
func WithTemplate(text string) Option {
	return func(r *Renderer) { r.text = text }
}

// WithStylesheet replaces the built-in stylesheet.
func WithStylesheet(css string) Option {
	return func(r *Renderer) { r.css = css }
}

// WithExplanation replaces the built-in Markdown explanation.
func WithExplanation(markdown []byte) Option {
	return func(r *Renderer) { r.markdown = markdown }
}

// NewRenderer parses the page template and converts the explanation
// Markdown once.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{text: pageTemplate, css: portalCSS, markdown: workflowMarkdown}
	for _, opt := range opts {
		opt(r)
	}
	tmpl, err := template.New("page").Parse(r.text)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	r.tmpl = tmpl
	explanation, err := MarkdownToHTML(r.markdown)
	if err != nil {
		return nil, fmt.Errorf("convert explanation: %w", err)
	}
	r.explanation = explanation
	return r, nil
}

// Render writes p to w.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	view := *p
	view.CSS = template.CSS(r.css)
	view.Explanation = r.explanation
	// render into a buffer so a template failure never emits a partial page
	buf := new(bytes.Buffer)
	if err := r.tmpl.Execute(buf, &view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// MarkdownToHTML converts GitHub flavoured Markdown into trusted HTML.
func MarkdownToHTML(markdown []byte) (template.HTML, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := md.Convert(markdown, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// LoadTemplate downloads a page template from any afs supported URL.
func LoadTemplate(ctx context.Context, URL string) (string, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", fmt.Errorf("download page template %q: %w", URL, err)
	}
	return string(data), nil
}
