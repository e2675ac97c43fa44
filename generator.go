package genindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-genindex/internal/fileutil"
	"github.com/alnah/go-genindex/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.SectionExtractor = (*pipeline.MarkerSectionExtractor)(nil)
	_ pipeline.ListParser       = (*pipeline.BulletListParser)(nil)
	_ pipeline.IndexRenderer    = (*pipeline.HTMLIndexRenderer)(nil)
)

// Generator orchestrates the extract-parse-render pipeline.
// Create with NewGenerator() and use Generate() per document.
type Generator struct {
	cfg       generatorConfig
	extractor pipeline.SectionExtractor
	parser    pipeline.ListParser
	renderer  pipeline.IndexRenderer
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithHeading, WithPage).
// Returns error if the configured heading is not a markdown heading line.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			heading: DefaultHeading,
			page: Page{
				Title:    DefaultPageTitle,
				RepoURL:  DefaultRepoURL,
				RepoText: DefaultRepoText,
			},
		},
		extractor: &pipeline.MarkerSectionExtractor{},
		parser:    &pipeline.BulletListParser{},
		renderer:  &pipeline.HTMLIndexRenderer{},
	}

	for _, opt := range opts {
		opt(g)
	}

	if !strings.HasPrefix(strings.TrimSpace(g.cfg.heading), "#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHeading, g.cfg.heading)
	}

	// Empty page fields fall back to defaults so WithPage callers only
	// override what they name.
	if g.cfg.page.Title == "" {
		g.cfg.page.Title = DefaultPageTitle
	}
	if g.cfg.page.RepoURL == "" {
		g.cfg.page.RepoURL = DefaultRepoURL
	}
	if g.cfg.page.RepoText == "" {
		g.cfg.page.RepoText = DefaultRepoText
	}

	return g, nil
}

// Generate runs the full pipeline and returns the rendered page with the
// parsed entries. The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	lines := fileutil.SplitLines(input.Markdown)

	section, err := g.extractor.ExtractSection(ctx, lines, g.cfg.heading)
	if err != nil {
		return nil, fmt.Errorf("extracting section: %w", err)
	}

	tools, err := g.parser.ParseList(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("parsing tool list: %w", err)
	}

	page := pipeline.PageData{
		Title:    g.cfg.page.Title,
		Heading:  headingText(g.cfg.heading),
		RepoURL:  g.cfg.page.RepoURL,
		RepoText: g.cfg.page.RepoText,
	}
	html := g.renderer.RenderIndex(ctx, tools, page)

	return &Result{
		HTML:  []byte(html),
		Tools: toToolEntries(tools),
	}, nil
}

// headingText strips the leading markdown markers from a heading line.
func headingText(heading string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(heading), "#"))
}

// toToolEntries converts internal pipeline.Tool values to the public type.
func toToolEntries(tools []pipeline.Tool) []ToolEntry {
	entries := make([]ToolEntry, len(tools))
	for i, t := range tools {
		entries[i] = ToolEntry(t)
	}
	return entries
}
