// Package render turns a stored markdown article body into the HTML, plain
// text and excerpt variants served by the feed.
package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// markdownMarker is the editor marker some renderers leave in the HTML
// output. It is removed before the plain-text pass.
const markdownMarker = "<!--markdown-->"

// excerptLength is measured in Unicode code points, not bytes.
const excerptLength = 200

// Renderer converts raw markdown into HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

// GoldmarkRenderer is the production Renderer.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{md: goldmark.New()}
}

func (r *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Content is the rendered bundle for one article. Markdown is the stored
// body unmodified; nothing here is cached between requests.
type Content struct {
	Markdown string
	HTML     string
	Text     string
	Excerpt  string
}

type Pipeline struct {
	renderer Renderer
}

func NewPipeline(renderer Renderer) *Pipeline {
	return &Pipeline{renderer: renderer}
}

func (p *Pipeline) Render(markdown string) (Content, error) {
	rendered, err := p.renderer.Render(markdown)
	if err != nil {
		return Content{}, err
	}

	rendered = strings.ReplaceAll(rendered, markdownMarker, "")
	text := stripTags(rendered)

	return Content{
		Markdown: markdown,
		HTML:     rendered,
		Text:     text,
		Excerpt:  excerpt(text),
	}, nil
}

// excerpt returns the first excerptLength code points of text, with an
// ellipsis appended when the text is longer. Slicing runes keeps the cut
// from ever splitting a multi-byte character.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	return string(runes[:excerptLength]) + "..."
}

func stripTags(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return strings.TrimSpace(builder.String())
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
