package main

import (
	"bytes"
	"testing"
)

func TestRenderPage(t *testing.T) {
	meta := Metadata{
		"title":       "T",
		"description": "D",
		"author":      "A",
		"date":        "2024-01-01",
	}

	var buf bytes.Buffer
	if err := RenderPage(&buf, meta, `<h1 id="heading">Heading</h1><script>copy()</script>`); err != nil {
		t.Fatal(err)
	}

	for _, e := range [][]byte{
		[]byte(`<h1 class="post-title">T</h1>`),
		[]byte(`<blockquote class="post-description">&quot;D&quot;</blockquote>`),
		[]byte("By A"),
		[]byte("2024-01-01"),
		[]byte(`<div class="prose dark:prose-invert">`),
		[]byte(`<h1 id="heading">Heading</h1><script>copy()</script>`),
	} {
		if !bytes.Contains(buf.Bytes(), e) {
			t.Errorf("Output does not have expected content %s", e)
		}
	}
}

func TestRenderPageEscapesMetadata(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, Metadata{"title": "<script>x</script>"}, ""); err != nil {
		t.Fatal(err)
	}

	if bytes.Contains(buf.Bytes(), []byte("<script>x</script>")) {
		t.Errorf("expected metadata to be escaped, got %s", buf.Bytes())
	}
}
