package changelog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// RenderMarkdown writes the changelog as a markdown document.
//
// The function is idempotent: the same changelog always produces identical
// output, so generated release notes can be diffed.
func RenderMarkdown(c Changelog, w io.Writer) error {
	if err := renderMarkdownHeader(c, w); err != nil {
		return err
	}

	for _, section := range c.Sections {
		if _, err := fmt.Fprintf(w, "\n### %s\n\n", section.Label); err != nil {
			return err
		}
		for _, entry := range section.Entries {
			if _, err := fmt.Fprintf(w, "- %s\n", formatEntry(entry)); err != nil {
				return err
			}
		}
	}

	return nil
}

// RenderMarkdownString is a convenience function that renders to a string.
func RenderMarkdownString(c Changelog) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(c, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderYAML writes the changelog as a YAML document.
func RenderYAML(c Changelog, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding changelog: %w", err)
	}
	return enc.Close()
}

func renderMarkdownHeader(c Changelog, w io.Writer) error {
	title := c.Version
	if title == "" {
		title = "Unreleased"
	}
	if c.Project != "" {
		title = c.Project + " " + title
	}
	_, err := fmt.Fprintf(w, "## %s\n", title)
	return err
}

func formatEntry(entry Entry) string {
	if entry.Scope != "" {
		return fmt.Sprintf("**%s**: %s", entry.Scope, entry.Subject)
	}
	return entry.Subject
}
