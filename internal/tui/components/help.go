package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders markdown for terminal display at the given width.
// Falls back to the raw text if the renderer cannot be created.
func RenderMarkdown(markdown string, width int) string {
	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(markdown)
		if err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return markdown
}
