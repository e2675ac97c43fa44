// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForHeadingNotFound returns hints for a missing marker heading.
func ForHeadingNotFound(heading, inputPath string) string {
	return format("add a " + quote(heading) + " section to " + inputPath +
		", or point --heading at the section to index")
}

// ForMalformedListItem returns a hint showing the expected bullet grammar.
func ForMalformedListItem() string {
	return format("list items must look like: * [Tool Name](https://example.com) - short description")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-genindex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-genindex) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-genindex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns hints for a missing input document.
func ForInputNotFound(inputPath string) string {
	return format("run from the repository root, or set input.path / --input to the markdown file (looked for " + inputPath + ")")
}

// quote wraps a value in single quotes for display.
func quote(s string) string {
	return "'" + s + "'"
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
