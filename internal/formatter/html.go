package formatter

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"dadeserasmus/internal/models"
)

// RenderHTML converts markdown produced by FormatTable into an HTML fragment.
// Raw HTML inside cells is dropped.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})

	return markdown.ToHTML([]byte(md), p, renderer)
}

// RosterHTML renders students as an HTML table.
func RosterHTML(students []models.Student, maxWidth int) []byte {
	return RenderHTML(FormatRoster(students, maxWidth))
}
