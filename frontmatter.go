package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Metadata holds the key-value pairs from a post's front matter
type Metadata map[string]any

func (m Metadata) Title() string       { return m.Value("title") }
func (m Metadata) Description() string { return m.Value("description") }
func (m Metadata) Author() string      { return m.Value("author") }
func (m Metadata) Date() string        { return m.Value("date") }

// Value returns the display value for key, or an empty string if it is not set
func (m Metadata) Value(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}

	switch v := v.(type) {
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

var frontMatterDelimiters = []string{"---", "+++", ";;;"}

// openingDelimiter returns the front matter delimiter on the first line of raw, if any
func openingDelimiter(raw string) string {
	line, _, _ := strings.Cut(raw, "\n")
	line = strings.TrimRight(line, " \t\r")
	for _, d := range frontMatterDelimiters {
		if line == d {
			return d
		}
	}
	return ""
}

// ParseFrontMatter splits raw post content into its front matter and markdown body.
// Content without front matter is returned as the body with empty metadata.
// A front matter block that is opened but never closed is malformed.
func ParseFrontMatter(raw string) (Metadata, string, error) {
	meta := Metadata{}

	body, err := frontmatter.Parse(strings.NewReader(raw), &meta)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	// the parser hands back the input untouched when the closing delimiter is missing
	if d := openingDelimiter(raw); d != "" && len(meta) == 0 && openingDelimiter(strings.TrimLeft(string(body), " \t\r\n")) == d {
		return nil, "", fmt.Errorf("%w: missing closing front matter delimiter %s", ErrMalformedDocument, d)
	}

	// an empty front matter block decodes to a nil map
	if meta == nil {
		meta = Metadata{}
	}

	return meta, string(body), nil
}
