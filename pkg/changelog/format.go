package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// sectionStyles maps section labels to their terminal styling.
var sectionStyles = map[string]*color.Color{
	BreakingLabel: color.New(color.FgRed, color.Bold),
	"Feat":        color.New(color.FgGreen),
	"Fix":         color.New(color.FgYellow),
	"Refactor":    color.New(color.FgBlue),
	"Perf":        color.New(color.FgMagenta),
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes the changelog to the writer with terminal styling:
// a bold version header and color-coded section headers.
func FormatTerminal(c Changelog, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	if err := writeHeader(c, w, opts); err != nil {
		return err
	}

	for _, section := range c.Sections {
		if err := writeSection(section, w, opts, width); err != nil {
			return fmt.Errorf("formatting section %s: %w", section.Label, err)
		}
	}

	return nil
}

func writeHeader(c Changelog, w io.Writer, opts FormatOptions) error {
	title := c.Version
	if title == "" {
		title = "Unreleased"
	}
	if c.Project != "" {
		title = c.Project + " " + title
	}

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s\n", title)
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "%s\n", bold(title))
	return err
}

func writeSection(section Section, w io.Writer, opts FormatOptions, width int) error {
	if opts.Plain {
		if _, err := fmt.Fprintf(w, "\n%s\n", section.Label); err != nil {
			return err
		}
	} else {
		colored := sectionStyles[section.Label].SprintFunc()
		if _, err := fmt.Fprintf(w, "\n%s\n", colored(section.Label)); err != nil {
			return err
		}
	}

	for _, entry := range section.Entries {
		text := entry.Subject
		if entry.Scope != "" {
			text = entry.Scope + ": " + entry.Subject
		}
		if !opts.Plain {
			text = wrapText(text, width-4, "    ")
		}
		if _, err := fmt.Fprintf(w, "  - %s\n", text); err != nil {
			return err
		}
	}

	return nil
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
