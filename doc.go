// Package genindex renders a markdown tool list as a static HTML index page.
//
// It scans one markdown document for a marker heading (by default
// "## List of tools"), parses the bulleted entries beneath it in the fixed
// "* [title](url) - description" grammar, and serializes them into a small
// standalone HTML page.
//
// # Quick Start
//
// Create a generator and feed it the document content:
//
//	gen, err := genindex.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, genindex.Input{
//	    Markdown: content,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0644)
//
// The result contains the rendered page (result.HTML) and the parsed
// entries (result.Tools) in source order.
//
// # Generation Pipeline
//
// Generation follows three stages:
//
//  1. Section extraction (lines between the marker heading and the next heading)
//  2. List parsing (bullet grammar, wrapped bullets joined)
//  3. HTML rendering (fixed boilerplate, escaped links, deterministic output)
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := genindex.NewGenerator(
//	    genindex.WithHeading("## Catalog"),
//	    genindex.WithPage(genindex.Page{Title: "My Tools"}),
//	)
//
// Omitted Page fields keep the standard boilerplate.
//
// # Errors
//
// A document without the marker heading fails with ErrHeadingNotFound; a
// bullet that does not match the grammar fails with ErrMalformedListItem
// carrying the offending raw text. There is no partial recovery: the first
// bad item aborts the whole run.
package genindex
