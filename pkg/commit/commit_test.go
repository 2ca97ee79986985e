package commit

import (
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		message  Message
		expected string
	}{
		{
			name:     "header only",
			message:  Message{Type: "fix", Scope: "parser", Subject: "handle empty input"},
			expected: "fix(parser): handle empty input",
		},
		{
			name:     "no scope",
			message:  Message{Type: "feat", Subject: "add export command"},
			expected: "feat: add export command",
		},
		{
			name:     "with body",
			message:  Message{Type: "fix", Subject: "correct minor typos in code", Body: "see the issue for details on the typos fixed"},
			expected: "fix: correct minor typos in code\n\nsee the issue for details on the typos fixed",
		},
		{
			name:     "breaking change with empty footer",
			message:  Message{Type: "feat", Subject: "drop legacy api", Breaking: true},
			expected: "feat: drop legacy api\n\nBREAKING CHANGE: ",
		},
		{
			name:     "breaking change with footer",
			message:  Message{Type: "feat", Subject: "drop legacy api", Breaking: true, Footer: "removes the v1 endpoints"},
			expected: "feat: drop legacy api\n\nBREAKING CHANGE: removes the v1 endpoints",
		},
		{
			name:     "plain footer",
			message:  Message{Type: "fix", Subject: "correct minor typos in code", Body: "see the issue for details on the typos fixed", Footer: "closes issue #12"},
			expected: "fix: correct minor typos in code\n\nsee the issue for details on the typos fixed\n\ncloses issue #12",
		},
		{
			name:     "breaking marker on type is folded into the footer",
			message:  Message{Type: "feat!", Subject: "drop legacy api"},
			expected: "feat: drop legacy api\n\nBREAKING CHANGE: ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.message.Render()
			if result != test.expected {
				t.Errorf("Render() = %q; want %q", result, test.expected)
			}
		})
	}
}

// Rendered messages must re-parse; the extracted subject must match the
// cleaned subject that went in.
func TestRenderRoundTrip(t *testing.T) {
	messages := []Message{
		{Type: "fix", Scope: "parser", Subject: "handle empty input"},
		{Type: "feat", Subject: "add export command", Body: "exports sections as markdown"},
		{Type: "feat", Subject: "drop legacy api", Breaking: true},
		{Type: "refactor", Scope: "core", Subject: "extract methods", Body: "first step", Footer: "refs #42"},
		{Type: "chore", Subject: "update dependencies"},
	}

	for _, m := range messages {
		rendered := m.Render()
		subject := ExtractSubject(rendered)
		if subject != m.Subject {
			t.Errorf("ExtractSubject(Render(%v)) = %q; want %q", m, subject, m.Subject)
		}

		parsed := ParseMessage(rendered)
		if parsed.Type != m.Type || parsed.Scope != m.Scope || parsed.Subject != m.Subject || parsed.Breaking != m.Breaking {
			t.Errorf("ParseMessage(Render(%v)) = %v", m, parsed)
		}
	}
}

func TestParseToken(t *testing.T) {
	for _, ids := range TokenIds {
		token, err := ParseToken(ids[0])
		if err != nil {
			t.Fatalf("ParseToken(%q) returned error: %v", ids[0], err)
		}
		if token.ToString() != ids[0] {
			t.Errorf("ParseToken(%q).ToString() = %q", ids[0], token.ToString())
		}
	}

	if _, err := ParseToken("improvement"); err == nil {
		t.Error("ParseToken(\"improvement\") should fail")
	}
	// the token set is case-sensitive
	if _, err := ParseToken("Feat"); err == nil {
		t.Error("ParseToken(\"Feat\") should fail")
	}

	if !IsToken("feat") || !IsToken("BREAKING CHANGE") {
		t.Error("IsToken should accept all members of the fixed set")
	}
	if IsToken("unknown") {
		t.Error("IsToken(\"unknown\") should be false")
	}
}
