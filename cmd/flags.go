package cmd

import (
	"github.com/thediveo/enumflag/v2"
)

// FormatType represents the supported changelog output formats.
type FormatType enumflag.Flag

const (
	// TextFormat renders colored terminal output.
	TextFormat FormatType = iota
	// MarkdownFormat renders a markdown document.
	MarkdownFormat
	// YAMLFormat renders a YAML document.
	YAMLFormat
)

// FormatIds maps FormatType to their string representations.
var FormatIds = map[FormatType][]string{
	TextFormat:     {"text"},
	MarkdownFormat: {"markdown", "md"},
	YAMLFormat:     {"yaml"},
}
