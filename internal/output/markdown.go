package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// maxMarkdownWidth keeps insight paragraphs readable on wide terminals.
const maxMarkdownWidth = 100

// RenderMarkdown renders model output for the terminal. When color is
// disabled, or rendering fails, the text is returned trimmed as-is.
func RenderMarkdown(text string, width int, color bool) string {
	text = strings.TrimSpace(text)
	if !color || text == "" {
		return text
	}
	if width <= 0 || width > maxMarkdownWidth {
		width = maxMarkdownWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
