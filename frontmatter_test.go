package main

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func readFixture(tb testing.TB, path string) string {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return string(data)
}

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		file     string
		expected map[string]string
		body     string
	}{
		{
			file: "testdata/content/hello-world.md",
			expected: map[string]string{
				"title":       "T",
				"description": "D",
				"author":      "A",
				"date":        "2024-01-01",
			},
			body: "# Heading",
		},
		{
			file: "testdata/content/toml-post.md",
			expected: map[string]string{
				"title":       "A TOML post",
				"description": "",
				"author":      "Danny",
				"date":        "2023-11-23",
			},
			body: "Written with TOML front matter.",
		},
		{
			file: "testdata/content/plain.md",
			expected: map[string]string{
				"title":       "",
				"description": "",
				"author":      "",
				"date":        "",
			},
			body: "# No front matter",
		},
	}

	for _, tc := range tests {
		meta, body, err := ParseFrontMatter(readFixture(t, tc.file))
		if err != nil {
			t.Errorf("%s: unexpected error: %s", tc.file, err)
			continue
		}

		got := map[string]string{
			"title":       meta.Title(),
			"description": meta.Description(),
			"author":      meta.Author(),
			"date":        meta.Date(),
		}
		for k, v := range tc.expected {
			if got[k] != v {
				t.Errorf("%s: invalid %s. expected %q, got %q", tc.file, k, v, got[k])
			}
		}

		if !strings.Contains(body, tc.body) {
			t.Errorf("%s: expected body to contain %q, got %q", tc.file, tc.body, body)
		}
		if strings.Contains(body, "title") {
			t.Errorf("%s: front matter leaked into body: %q", tc.file, body)
		}
	}
}

func TestParseFrontMatterMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid yaml", readFixture(t, "testdata/content/broken.md")},
		{"unclosed yaml", readFixture(t, "testdata/content/unclosed.md")},
		{"unclosed toml", "+++\ntitle = \"Draft\"\n\nBody\n"},
	}

	for _, tc := range tests {
		meta, body, err := ParseFrontMatter(tc.raw)
		if !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("%s: expected ErrMalformedDocument, got %v", tc.name, err)
		}
		if meta != nil || body != "" {
			t.Errorf("%s: expected no output, got %v %q", tc.name, meta, body)
		}
	}
}

func TestParseFrontMatterEmptyBlock(t *testing.T) {
	meta, body, err := ParseFrontMatter("---\n---\n\n# Heading\n")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(meta) != 0 {
		t.Errorf("expected empty metadata, got %v", meta)
	}
	if !strings.Contains(body, "# Heading") {
		t.Errorf("invalid body. Got %q", body)
	}
}

func TestMetadataValue(t *testing.T) {
	meta := Metadata{
		"count":     3,
		"published": time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		"draft":     false,
		"empty":     nil,
	}

	tests := []struct {
		key      string
		expected string
	}{
		{"count", "3"},
		{"published", "2024-01-01"},
		{"draft", "false"},
		{"empty", ""},
		{"missing", ""},
	}

	for _, tc := range tests {
		if got := meta.Value(tc.key); got != tc.expected {
			t.Errorf("%s: expected %q, got %q", tc.key, tc.expected, got)
		}
	}
}
