package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlConverter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown report into an HTML fragment. Tables are rendered
// the GitHub way.
func HTML(markdown string) (string, error) {
	var b bytes.Buffer
	if err := htmlConverter.Convert([]byte(markdown), &b); err != nil {
		return "", fmt.Errorf("cannot convert report to HTML: %w", err)
	}
	return b.String(), nil
}
