package main

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"go.abhg.dev/goldmark/anchor"
)

type PipelineOptions struct {
	// DefaultTitle is the document title for posts without a title in their front matter
	DefaultTitle string

	// Theme is the chroma style used for code blocks
	Theme string

	// Trusted allows raw HTML in posts. Untrusted output is sanitized.
	Trusted bool

	CopyButton CopyButtonOptions
}

// Pipeline turns a markdown body into a complete HTML document.
// It holds no goldmark state, a new engine is configured for every conversion.
type Pipeline struct {
	opts      PipelineOptions
	themeCSS  template.CSS
	sanitizer *bluemonday.Policy
}

func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	var css bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&css, styles.Get(opts.Theme)); err != nil {
		return nil, fmt.Errorf("generating stylesheet for theme %s: %w", opts.Theme, err)
	}

	p := &Pipeline{
		opts:     opts,
		themeCSS: template.CSS(css.String()),
	}
	if !opts.Trusted {
		p.sanitizer = newSanitizer()
	}

	return p, nil
}

func (p *Pipeline) newMarkdown() goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if p.opts.Trusted {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			&anchor.Extender{
				Texter:     anchor.Text("#"),
				Position:   anchor.Before,
				Attributer: anchor.Attributes{"class": "anchor"},
			},
			highlighting.NewHighlighting(
				highlighting.WithStyle(p.opts.Theme),
				highlighting.WithGuessLanguage(true),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
				highlighting.WithWrapperRenderer(codeBlockWrapper(p.opts.CopyButton)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

// Convert renders the markdown body and wraps it in a document titled after the post.
// Heading ids are unique within one call and identical across calls for the same input.
func (p *Pipeline) Convert(meta Metadata, body string) (string, error) {
	var buf bytes.Buffer
	if err := p.newMarkdown().Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	content := buf.String()
	if p.sanitizer != nil {
		content = p.sanitizer.Sanitize(content)
	}

	title := meta.Title()
	if title == "" {
		title = p.opts.DefaultTitle
	}

	var doc bytes.Buffer
	if err := templates.ExecuteTemplate(&doc, "document.html", map[string]any{
		"Title":      title,
		"Stylesheet": p.themeCSS,
		"Content":    template.HTML(content),
	}); err != nil {
		return "", fmt.Errorf("wrapping document: %w", err)
	}

	return doc.String(), nil
}

// newSanitizer allows user generated content plus the markup the pipeline itself emits
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowDataAttributes()
	p.AllowElements("figure", "button")
	p.AllowAttrs("type", "title", "aria-label").OnElements("button")
	p.AllowAttrs("tabindex").OnElements("pre")

	// task list items
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")

	// table column alignment
	p.AllowStyles("text-align").Matching(regexp.MustCompile(`^(left|center|right)$`)).OnElements("th", "td")
	p.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|center|right)$`)).OnElements("th", "td")

	// heading anchors point into the same page
	p.RequireNoFollowOnLinks(false)
	p.RequireNoFollowOnFullyQualifiedLinks(true)
	return p
}
