package main

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// RenderPage writes the post layout with the given metadata and HTML content.
// The content is inserted as-is, it is expected to come out of a Pipeline.
func RenderPage(w io.Writer, meta Metadata, content string) error {
	return templates.ExecuteTemplate(w, "post.html", map[string]any{
		"Meta":    meta,
		"Content": template.HTML(content),
	})
}
