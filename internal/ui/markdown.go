package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is the column width used when rendering markdown.
const DefaultWordWrap = 100

// RenderMarkdown renders markdown for terminal display using the style that
// matches the terminal background.
func RenderMarkdown(md string, wordWrap int) (string, error) {
	if wordWrap <= 0 {
		wordWrap = DefaultWordWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
