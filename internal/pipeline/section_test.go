package pipeline

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestMarkerSectionExtractor_ExtractSection(t *testing.T) {
	t.Parallel()

	const heading = "## List of tools"

	tests := []struct {
		name    string
		lines   []string
		want    []string
		wantErr error
	}{
		{
			name: "section bounded by next heading",
			lines: []string{
				"# Intro",
				"some prose",
				"## List of tools",
				"* [Foo](http://a.com) - does foo",
				"* [Bar](http://b.com) - does bar",
				"## License",
				"MIT",
			},
			want: []string{
				"* [Foo](http://a.com) - does foo",
				"* [Bar](http://b.com) - does bar",
			},
		},
		{
			name: "section runs to end of document",
			lines: []string{
				"## List of tools",
				"* [Foo](http://a.com) - does foo",
				"",
				"trailing prose",
			},
			want: []string{
				"* [Foo](http://a.com) - does foo",
				"",
				"trailing prose",
			},
		},
		{
			name: "heading match is case-insensitive and trimmed",
			lines: []string{
				"  ## LIST OF TOOLS  ",
				"* [Foo](http://a.com) - does foo",
			},
			want: []string{
				"* [Foo](http://a.com) - does foo",
			},
		},
		{
			name: "first occurrence wins",
			lines: []string{
				"## List of tools",
				"first",
				"## List of tools",
				"second",
			},
			want: []string{"first"},
		},
		{
			name: "empty section when heading immediately followed by heading",
			lines: []string{
				"## List of tools",
				"### Subsection",
				"ignored",
			},
			want: []string{},
		},
		{
			name: "empty section when heading is last line",
			lines: []string{
				"# Title",
				"## List of tools",
			},
			want: []string{},
		},
		{
			name:    "missing heading",
			lines:   []string{"# Title", "prose", "## Other section"},
			wantErr: ErrHeadingNotFound,
		},
		{
			name:    "empty document",
			lines:   []string{},
			wantErr: ErrHeadingNotFound,
		},
		{
			name: "indented heading marker does not terminate section",
			lines: []string{
				"## List of tools",
				"* [Foo](http://a.com) - does foo",
				"  # not a heading at column zero",
				"## Next",
			},
			want: []string{
				"* [Foo](http://a.com) - does foo",
				"  # not a heading at column zero",
			},
		},
	}

	e := &MarkerSectionExtractor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := e.ExtractSection(context.Background(), tt.lines, heading)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractSection() error = %v, want %v", err, tt.wantErr)
				}
				if err != nil && !strings.Contains(err.Error(), heading) {
					t.Errorf("error %q does not name the missing heading", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ExtractSection() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSection() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMarkerSectionExtractor_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &MarkerSectionExtractor{}
	_, err := e.ExtractSection(ctx, []string{"## List of tools"}, "## List of tools")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ExtractSection() error = %v, want context.Canceled", err)
	}
}
