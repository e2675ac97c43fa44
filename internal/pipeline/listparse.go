package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedListItem indicates an assembled item does not match the bullet grammar.
var ErrMalformedListItem = errors.New("malformed list item")

// Precompiled patterns for the bullet grammar.
var (
	// Full item shape: * [TITLE](URL) - DESCRIPTION
	// TITLE excludes ']', URL excludes ')'; the first dash after the closing
	// paren splits off the description.
	bulletItemPattern = regexp.MustCompile(`^\* \[([^\]]+)\]\(([^)]+)\)\s*-\s*(.+)$`)
)

// Tool is one parsed entry of the tool list.
type Tool struct {
	Title       string
	URL         string
	Description string
}

// ListParser abstracts parsing of a bulleted tool list.
type ListParser interface {
	ParseList(ctx context.Context, lines []string) ([]Tool, error)
}

// BulletListParser parses markdown bullet items in the fixed
// "* [title](url) - description" grammar. A bullet may wrap onto following
// lines; continuation lines are joined with single spaces before matching.
type BulletListParser struct{}

// ParseList groups lines into logical items and matches each against the
// bullet grammar, preserving source order. Returns ErrMalformedListItem with
// the offending raw text for any item that does not match. Empty input
// yields an empty slice.
func (p *BulletListParser) ParseList(ctx context.Context, lines []string) ([]Tool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tools := []Tool{}
	buffer := ""

	flush := func() error {
		if buffer == "" {
			return nil
		}
		tool, err := parseItem(buffer)
		if err != nil {
			return err
		}
		tools = append(tools, tool)
		buffer = ""
		return nil
	}

	for _, line := range lines {
		switch {
		case isBulletStart(line):
			if err := flush(); err != nil {
				return nil, err
			}
			buffer = strings.TrimSpace(line)
		case buffer != "" && strings.TrimSpace(line) != "":
			// Continuation of a wrapped bullet.
			buffer += " " + strings.TrimSpace(line)
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return tools, nil
}

// isBulletStart reports whether the line opens a new bullet item.
func isBulletStart(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "* ")
}

// parseItem matches one assembled item against the bullet grammar.
func parseItem(raw string) (Tool, error) {
	m := bulletItemPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Tool{}, fmt.Errorf("%w: %q", ErrMalformedListItem, raw)
	}
	return Tool{
		Title:       m[1],
		URL:         m[2],
		Description: strings.TrimSpace(m[3]),
	}, nil
}
