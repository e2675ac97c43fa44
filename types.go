package genindex

// Default boilerplate values. The zero-config invocation renders exactly
// this page around the parsed list.
const (
	DefaultHeading   = "## List of tools"
	DefaultPageTitle = "eliben browser-tools"
	DefaultRepoURL   = "https://github.com/eliben/browser-tools"
	DefaultRepoText  = "the GitHub repository"
)

// ToolEntry is one parsed item of the tool list: title, link target, and
// optional description. Entries are immutable and keep source order.
type ToolEntry struct {
	Title       string
	URL         string
	Description string
}

// Input contains generation parameters.
type Input struct {
	Markdown string // Markdown document content (required)
}

// Result holds the outcome of a generation.
type Result struct {
	HTML  []byte      // Rendered index page, ends with a single newline
	Tools []ToolEntry // Parsed entries in source order
}

// Page configures the fixed boilerplate of the rendered page.
// Zero-value fields fall back to the defaults above.
type Page struct {
	Title    string // <title> text
	RepoURL  string // Project reference link target
	RepoText string // Project reference link text
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	heading string
	page    Page
}

// WithHeading sets the marker heading that delimits the list section.
// The heading's text (without the leading markers) becomes the page <h1>.
func WithHeading(heading string) Option {
	return func(g *Generator) {
		g.cfg.heading = heading
	}
}

// WithPage overrides the page boilerplate. Empty fields keep their defaults.
func WithPage(page Page) Option {
	return func(g *Generator) {
		g.cfg.page = page
	}
}
