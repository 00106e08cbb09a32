package main

import (
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/util"
)

// CopyButtonOptions configures the copy-to-clipboard control attached to code blocks
type CopyButtonOptions struct {
	// Visibility is either "always" or "hover"
	Visibility string `toml:"visibility"`

	// FeedbackDuration is the number of milliseconds the copied state is shown
	FeedbackDuration int `toml:"feedback_duration"`
}

// codeBlockWrapper wraps every fenced code block in a figure carrying a copy button.
// Blocks chroma could not highlight arrive without markup, so the pre and code tags are written here.
func codeBlockWrapper(opts CopyButtonOptions) func(util.BufWriter, highlighting.CodeBlockContext, bool) {
	return func(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
		lang, hasLang := c.Language()

		if entering {
			_, _ = w.WriteString(`<figure class="code-block"`)
			if hasLang && len(lang) > 0 {
				_, _ = w.WriteString(` data-language="`)
				_, _ = w.Write(util.EscapeHTML(lang))
				_ = w.WriteByte('"')
			}
			_, _ = w.WriteString(">\n")

			if !c.Highlighted() {
				_, _ = w.WriteString("<pre><code")
				if hasLang && len(lang) > 0 {
					_, _ = w.WriteString(` class="language-`)
					_, _ = w.Write(util.EscapeHTML(lang))
					_ = w.WriteByte('"')
				}
				_ = w.WriteByte('>')
			}
			return
		}

		if !c.Highlighted() {
			_, _ = w.WriteString("</code></pre>\n")
		}
		_, _ = fmt.Fprintf(w,
			`<button type="button" class="copy-button" title="Copy code" aria-label="Copy code" data-visibility="%s" data-feedback-duration="%d">`+
				`<span class="ready"></span><span class="success"></span></button>`+"\n",
			util.EscapeHTML([]byte(opts.Visibility)), opts.FeedbackDuration)
		_, _ = w.WriteString("</figure>\n")
	}
}
