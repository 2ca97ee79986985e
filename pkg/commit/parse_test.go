package commit

import (
	"testing"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		input    string
		expected Message
	}{
		{
			input: "fix: correct minor typos",
			expected: Message{
				Type:    "fix",
				Scope:   "",
				Subject: "correct minor typos",
			},
		},
		{
			input: "feat(parser): add new parsing functions",
			expected: Message{
				Type:    "feat",
				Scope:   "parser",
				Subject: "add new parsing functions",
			},
		},
		{
			input: "refactor(core)!: extract methods",
			expected: Message{
				Type:     "refactor",
				Scope:    "core",
				Breaking: true,
				Subject:  "extract methods",
			},
		},
		{
			input: "style!: remove unused imports",
			expected: Message{
				Type:     "style",
				Scope:    "",
				Breaking: true,
				Subject:  "remove unused imports",
			},
		},
		{
			input: "wrong format message",
			expected: Message{
				Subject: "wrong format message",
			},
		},
		{
			input: "fix: correct minor typos in code\n\nsee the issue for details on the typos fixed\n\ncloses issue #12",
			expected: Message{
				Type:    "fix",
				Subject: "correct minor typos in code",
				Body:    "see the issue for details on the typos fixed\n\ncloses issue #12",
			},
		},
		{
			input: "feat: drop legacy api\n\nBREAKING CHANGE: removes the v1 endpoints",
			expected: Message{
				Type:     "feat",
				Breaking: true,
				Subject:  "drop legacy api",
				Footer:   "removes the v1 endpoints",
			},
		},
		{
			input: "feat: drop legacy api\n\nmigration notes\n\nBREAKING CHANGE: ",
			expected: Message{
				Type:     "feat",
				Breaking: true,
				Subject:  "drop legacy api",
				Body:     "migration notes",
				Footer:   "",
			},
		},
	}

	for _, test := range tests {
		result := ParseMessage(test.input)
		if result != test.expected {
			t.Errorf("ParseMessage(%q) = %v; want %v", test.input, result, test.expected)
		}
	}
}

func TestExtractSubject(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"fix: correct minor typos in code", "correct minor typos in code"},
		{"feat(parser): add new parsing functions", "add new parsing functions"},
		{"refactor(core)!: extract methods", "extract methods"},
		{"fix: correct minor typos in code\n\nsee the issue for details on the typos fixed\n\ncloses issue #12", "correct minor typos in code"},
		{"fix: trailing newline is fine\n", "trailing newline is fine"},
		// no space after the colon
		{"fix:no space", ""},
		// unrecognized type token
		{"unknown: not a conventional type", ""},
		// body must be separated by a blank line
		{"fix: subject\nbody without blank line", ""},
		{"merge branch 'main' into feature", ""},
		{"", ""},
	}

	for _, test := range tests {
		result := ExtractSubject(test.input)
		if result != test.expected {
			t.Errorf("ExtractSubject(%q) = %q; want %q", test.input, result, test.expected)
		}
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input    string
		expected Extraction
		ok       bool
	}{
		{
			input:    "feat(ui): add button",
			expected: Extraction{ChangeType: "feat", Scope: "ui", Subject: "add button"},
			ok:       true,
		},
		{
			input:    "fix!: handle nil pointer",
			expected: Extraction{ChangeType: "fix", Breaking: true, Subject: "handle nil pointer"},
			ok:       true,
		},
		{
			input:    "perf(query)!: rework index layout",
			expected: Extraction{ChangeType: "perf", Scope: "query", Breaking: true, Subject: "rework index layout"},
			ok:       true,
		},
		{
			input:    "BREAKING CHANGE: drop config v0 support",
			expected: Extraction{ChangeType: "BREAKING CHANGE", Subject: "drop config v0 support"},
			ok:       true,
		},
		{
			// the `word!:` fallback accepts unrecognized types as breaking
			input:    "custom!: rename public api",
			expected: Extraction{ChangeType: "custom", Breaking: true, Subject: "rename public api"},
			ok:       true,
		},
		{
			input:    "fix: first line\n\nrest is ignored here",
			expected: Extraction{ChangeType: "fix", Subject: "first line"},
			ok:       true,
		},
		// docs has no bump impact and is not part of the extraction set
		{input: "docs: update readme", ok: false},
		{input: "custom: without breaking marker", ok: false},
		{input: "not a conventional commit", ok: false},
		{input: "", ok: false},
	}

	for _, test := range tests {
		result, ok := Extract(test.input)
		if ok != test.ok {
			t.Errorf("Extract(%q) ok = %v; want %v", test.input, ok, test.ok)
			continue
		}
		if ok && result != test.expected {
			t.Errorf("Extract(%q) = %v; want %v", test.input, result, test.expected)
		}
	}
}
