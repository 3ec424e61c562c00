package site

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// MarkdownDescriber returns a Describer rendering descriptions as CommonMark.
// Raw HTML inside descriptions is dropped by goldmark's default renderer.
func MarkdownDescriber() Describer {
	md := goldmark.New()
	return func(description string) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(description), &buf); err != nil {
			return "", fmt.Errorf("render markdown description: %w", err)
		}
		return buf.String(), nil
	}
}
