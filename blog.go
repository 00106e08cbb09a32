package main

import (
	"bytes"
	"fmt"
)

// Blog renders posts by slug
type Blog struct {
	loader   *Loader
	pipeline *Pipeline
}

func NewBlog(loader *Loader, pipeline *Pipeline) *Blog {
	return &Blog{
		loader:   loader,
		pipeline: pipeline,
	}
}

// Render returns the full page for the post with the given slug.
// Nothing is returned unless every stage succeeded.
func (b *Blog) Render(slug string) ([]byte, error) {
	defer measure("rendering " + slug)()

	raw, err := b.loader.Load(slug)
	if err != nil {
		return nil, err
	}

	meta, body, err := ParseFrontMatter(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", slug, err)
	}

	content, err := b.pipeline.Convert(meta, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", slug, err)
	}

	var buf bytes.Buffer
	if err := RenderPage(&buf, meta, content); err != nil {
		return nil, fmt.Errorf("%s: rendering page: %w", slug, err)
	}

	return buf.Bytes(), nil
}
