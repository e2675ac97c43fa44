package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrHeadingNotFound indicates the marker heading is absent from the document.
var ErrHeadingNotFound = errors.New("heading not found")

// SectionExtractor abstracts extraction of a heading-delimited region.
type SectionExtractor interface {
	ExtractSection(ctx context.Context, lines []string, heading string) ([]string, error)
}

// MarkerSectionExtractor extracts the lines between a marker heading and the
// next heading (or end of document).
type MarkerSectionExtractor struct{}

// ExtractSection scans lines top-to-bottom for the first line whose trimmed
// text equals heading case-insensitively, then collects every subsequent line
// until the next line starting with '#'. The heading line itself and the
// terminating heading are never included. Returns ErrHeadingNotFound if the
// marker heading is absent.
func (e *MarkerSectionExtractor) ExtractSection(ctx context.Context, lines []string, heading string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := -1
	for i, line := range lines {
		if strings.EqualFold(strings.TrimSpace(line), heading) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("%w: %q", ErrHeadingNotFound, heading)
	}

	section := make([]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		if strings.HasPrefix(line, "#") {
			break
		}
		section = append(section, line)
	}

	return section, nil
}
