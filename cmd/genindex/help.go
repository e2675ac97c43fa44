package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genindex [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the markdown tool list as a static HTML index page.")
	fmt.Fprintln(w, "With no flags, reads README.md and writes index.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --input <path>        Markdown file to read (default: README.md)")
	fmt.Fprintln(w, "  -o, --output <path>       HTML file to write (default: index.html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --title <s>           Page <title> text")
	fmt.Fprintln(w, "      --heading <s>         Marker heading of the list section")
	fmt.Fprintln(w, "                            (default: \"## List of tools\")")
	fmt.Fprintln(w, "      --repo-url <s>        Project reference link target")
	fmt.Fprintln(w, "      --repo-text <s>       Project reference link text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version information")
}
