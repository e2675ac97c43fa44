package pipeline

import (
	"context"
	"html"
	"strings"
)

// PageData holds the fixed boilerplate strings of the rendered index page.
type PageData struct {
	Title    string // <title> text
	Heading  string // <h1> text
	RepoURL  string // href of the reference link above the list
	RepoText string // link text of the reference link
}

// IndexRenderer abstracts rendering of a tool list to an HTML page.
type IndexRenderer interface {
	RenderIndex(ctx context.Context, tools []Tool, page PageData) string
}

// HTMLIndexRenderer serializes tools into a fixed-structure HTML5 document.
// Rendering is deterministic: identical inputs produce byte-identical output.
type HTMLIndexRenderer struct{}

// RenderIndex produces the complete index page: static boilerplate, one
// <li> per tool in order, closing tags, and a single trailing newline.
// Titles and descriptions are text-escaped, URLs attribute-escaped; no other
// transformation is applied to user content. Never fails; an empty tool
// slice yields an empty <ul>.
func (r *HTMLIndexRenderer) RenderIndex(ctx context.Context, tools []Tool, page PageData) string {
	var b strings.Builder

	b.WriteString("<!doctype html>\n")
	b.WriteString("<html>\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <title>" + html.EscapeString(page.Title) + "</title>\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString("  See <a href=\"" + html.EscapeString(page.RepoURL) + "\">" +
		html.EscapeString(page.RepoText) + "</a> for details\n")
	b.WriteString("  <h1>" + html.EscapeString(page.Heading) + "</h1>\n")
	b.WriteString("  <ul>\n")

	for _, tool := range tools {
		b.WriteString("    <li><a href=\"" + html.EscapeString(tool.URL) + "\">" +
			html.EscapeString(tool.Title) + "</a>")
		if tool.Description != "" {
			b.WriteString(" - " + html.EscapeString(tool.Description))
		}
		b.WriteString("</li>\n")
	}

	b.WriteString("  </ul>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	return b.String()
}
