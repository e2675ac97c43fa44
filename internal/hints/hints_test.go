package hints

import (
	"strings"
	"testing"
)

func TestForHeadingNotFound(t *testing.T) {
	t.Parallel()

	hint := ForHeadingNotFound("## List of tools", "README.md")

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint %q missing standard prefix", hint)
	}
	if !strings.Contains(hint, "'## List of tools'") {
		t.Error("expected the missing heading to be named")
	}
	if !strings.Contains(hint, "README.md") {
		t.Error("expected the input file to be named")
	}
}

func TestForMalformedListItem(t *testing.T) {
	t.Parallel()

	hint := ForMalformedListItem()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "* [Tool Name](https://example.com) - short description") {
		t.Error("expected the grammar example")
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		paths        []string
		wantContains []string
	}{
		{
			name:         "suggests user config path when searched",
			paths:        []string{"site.yaml", "/home/u/.config/go-genindex/site.yaml"},
			wantContains: []string{"--config", "/home/u/.config/go-genindex/site.yaml"},
		},
		{
			name:         "no user config path searched",
			paths:        []string{"site.yaml", "site.yml"},
			wantContains: []string{"--config"},
		},
		{
			name:         "empty paths",
			paths:        nil,
			wantContains: []string{"--config"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.wantContains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q missing %q", hint, want)
				}
			}
		})
	}
}

func TestForInputNotFound(t *testing.T) {
	t.Parallel()

	hint := ForInputNotFound("README.md")

	if !strings.Contains(hint, "README.md") {
		t.Error("expected the input path to be named")
	}
	if !strings.Contains(hint, "--input") {
		t.Error("expected the --input flag suggestion")
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
