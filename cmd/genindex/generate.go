package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	genindex "github.com/alnah/go-genindex"
	"github.com/alnah/go-genindex/internal/config"
	"github.com/alnah/go-genindex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput      = errors.New("failed to read markdown file")
	ErrWriteOutput    = errors.New("failed to write HTML file")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

// filePermissions is the mode for the written index page.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// runGenerate orchestrates the extract-parse-render-write run.
func runGenerate(ctx context.Context, positionalArgs []string, flags *genFlags, env *Environment) error {
	if len(positionalArgs) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positionalArgs, " "))
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(triedPathsFrom(err)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Read the input document fully into memory
	data, err := os.ReadFile(cfg.Input.Path) // #nosec G304 -- input path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %v%s", ErrReadInput, err, hints.ForInputNotFound(cfg.Input.Path))
		}
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	gen, err := genindex.NewGenerator(
		genindex.WithHeading(cfg.Page.Heading),
		genindex.WithPage(genindex.Page{
			Title:    cfg.Page.Title,
			RepoURL:  cfg.Page.RepoURL,
			RepoText: cfg.Page.RepoText,
		}),
	)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := gen.Generate(ctx, genindex.Input{Markdown: string(data)})
	if err != nil {
		switch {
		case errors.Is(err, genindex.ErrHeadingNotFound):
			return fmt.Errorf("%w%s", err, hints.ForHeadingNotFound(cfg.Page.Heading, cfg.Input.Path))
		case errors.Is(err, genindex.ErrMalformedListItem):
			return fmt.Errorf("%w%s", err, hints.ForMalformedListItem())
		}
		return err
	}

	// Write the page fully at the end; nothing is written on failure above
	if err := os.WriteFile(cfg.Output.Path, result.HTML, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "parsed %d tool(s) from %s in %v\n",
			len(result.Tools), cfg.Input.Path, env.Now().Sub(start))
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %s\n", cfg.Output.Path)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *genFlags, cfg *config.Config) {
	if flags.input != "" {
		cfg.Input.Path = flags.input
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.title != "" {
		cfg.Page.Title = flags.title
	}
	if flags.heading != "" {
		cfg.Page.Heading = flags.heading
	}
	if flags.repoURL != "" {
		cfg.Page.RepoURL = flags.repoURL
	}
	if flags.repoText != "" {
		cfg.Page.RepoText = flags.repoText
	}
}

// triedPathsFrom recovers the searched paths listed in a config-not-found
// error message ("config file not found: tried a, b, c").
func triedPathsFrom(err error) []string {
	msg := err.Error()
	idx := strings.Index(msg, "tried ")
	if idx == -1 {
		return nil
	}
	return strings.Split(msg[idx+len("tried "):], ", ")
}
