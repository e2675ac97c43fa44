package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// genFlags holds all flags for the generate run.
// Every flag is optional; the zero-flag invocation reads README.md and
// writes index.html with the standard page boilerplate.
type genFlags struct {
	config   string
	input    string
	output   string
	title    string
	heading  string
	repoURL  string
	repoText string
	quiet    bool
	verbose  bool
	version  bool
}

// addCommonFlags adds config and output-control flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *genFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version information")
}

// addIOFlags adds input/output path flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *genFlags) {
	fs.StringVar(&f.input, "input", "", "markdown file to read (default: README.md)")
	fs.StringVarP(&f.output, "output", "o", "", "HTML file to write (default: index.html)")
}

// addPageFlags adds page boilerplate flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *genFlags) {
	fs.StringVar(&f.title, "title", "", "page <title> text")
	fs.StringVar(&f.heading, "heading", "", "marker heading of the list section")
	fs.StringVar(&f.repoURL, "repo-url", "", "project reference link target")
	fs.StringVar(&f.repoText, "repo-text", "", "project reference link text")
}

// parseFlags parses CLI flags and returns remaining positional args.
func parseFlags(args []string) (*genFlags, []string, error) {
	fs := flag.NewFlagSet("genindex", flag.ContinueOnError)
	f := &genFlags{}

	addCommonFlags(fs, f)
	addIOFlags(fs, f)
	addPageFlags(fs, f)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
