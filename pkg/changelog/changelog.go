// Package changelog groups conventional commits into release note sections.
package changelog

import (
	"github.com/zbiljic/kommit/pkg/commit"
)

// BreakingLabel is the section header for breaking changes. Breaking commits
// land here regardless of their type, including `word!:` headers with
// unrecognized types.
const BreakingLabel = "BREAKING CHANGES"

// ChangeTypeMap maps commit type tokens to their section display labels.
// Only these types (plus breaking changes) appear in generated output.
var ChangeTypeMap = map[string]string{
	"feat":     "Feat",
	"fix":      "Fix",
	"refactor": "Refactor",
	"perf":     "Perf",
}

// sectionOrder is the fixed rendering order of section labels.
var sectionOrder = []string{
	BreakingLabel,
	"Feat",
	"Fix",
	"Refactor",
	"Perf",
}

// Entry is a single commit line within a section.
type Entry struct {
	ChangeType string `yaml:"change_type"`
	Scope      string `yaml:"scope,omitempty"`
	Subject    string `yaml:"subject"`
	Breaking   bool   `yaml:"breaking,omitempty"`
}

// Section groups entries under a display label.
type Section struct {
	Label   string  `yaml:"label"`
	Entries []Entry `yaml:"entries"`
}

// Changelog is the generated release note document for a single version.
type Changelog struct {
	Project  string    `yaml:"project,omitempty"`
	Version  string    `yaml:"version,omitempty"`
	Sections []Section `yaml:"sections"`
}

// IsEmpty reports whether no commit produced a changelog entry.
func (c Changelog) IsEmpty() bool {
	return len(c.Sections) == 0
}

// Count returns the total number of entries across all sections.
func (c Changelog) Count() int {
	var n int
	for _, s := range c.Sections {
		n += len(s.Entries)
	}
	return n
}

// Build generates a changelog from raw commit message strings, newest first.
//
// Each message runs through the extraction pattern; non-conventional entries
// are silently skipped. Breaking commits go to the breaking section, others
// to the section for their type. Entry order within a section follows input
// order.
func Build(project, version string, messages []string) Changelog {
	grouped := make(map[string][]Entry)

	for _, message := range messages {
		ex, ok := commit.Extract(message)
		if !ok {
			continue
		}

		entry := Entry{
			ChangeType: ex.ChangeType,
			Scope:      ex.Scope,
			Subject:    ex.Subject,
			Breaking:   ex.Breaking,
		}

		label, ok := labelFor(ex)
		if !ok {
			continue
		}

		grouped[label] = append(grouped[label], entry)
	}

	out := Changelog{
		Project: project,
		Version: version,
	}
	for _, label := range sectionOrder {
		if entries, ok := grouped[label]; ok {
			out.Sections = append(out.Sections, Section{
				Label:   label,
				Entries: entries,
			})
		}
	}

	return out
}

func labelFor(ex commit.Extraction) (string, bool) {
	if ex.Breaking || ex.ChangeType == commit.BreakingChangeToken.ToString() {
		return BreakingLabel, true
	}
	label, ok := ChangeTypeMap[ex.ChangeType]
	return label, ok
}
