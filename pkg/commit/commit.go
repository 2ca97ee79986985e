package commit

import (
	"fmt"
	"strings"
)

// BreakingChangePrefix marks a breaking change footer paragraph.
const BreakingChangePrefix = "BREAKING CHANGE: "

// Message holds the structured parts of a conventional commit message.
type Message struct {
	Type     string
	Scope    string
	Breaking bool
	Subject  string
	Body     string
	Footer   string
}

// Render converts the Message struct into the canonical commit message text.
//
// The header is `type(scope): subject`. Body and footer are appended as
// separate paragraphs. When Breaking is set the footer is rewritten to
// `BREAKING CHANGE: {footer}`, even when the footer itself is empty.
//
// Render performs no validation; fields are expected to be cleaned during
// collection.
func (m Message) Render() string {
	var out string
	if m.Type != "" {
		if strings.HasSuffix(m.Type, "!") {
			m.Type = m.Type[:len(m.Type)-1]
			m.Breaking = true
		}
		out += strings.TrimSpace(m.Type)
		if m.Scope != "" {
			out += fmt.Sprintf("(%s)", strings.TrimSpace(m.Scope))
		}
		out += ": "
	}
	out += m.Subject

	if m.Body != "" {
		out += "\n\n" + m.Body
	}

	footer := m.Footer
	if m.Breaking {
		footer = BreakingChangePrefix + footer
	}
	if footer != "" {
		out += "\n\n" + footer
	}

	return out
}

// Token enumerates the fixed set of conventional commit types. The set is
// closed; adding a member is a code change, not configuration.
type Token int

const (
	BuildToken Token = iota
	ChoreToken
	CIToken
	DocsToken
	FeatToken
	FixToken
	PerfToken
	RefactorToken
	RevertToken
	StyleToken
	TestToken
	BumpToken
	// BreakingChangeToken is the multi-word token a commit may declare in
	// place of a regular type to force a breaking change.
	BreakingChangeToken
)

var TokenIds = map[Token][]string{
	BuildToken:          {"build"},
	ChoreToken:          {"chore"},
	CIToken:             {"ci"},
	DocsToken:           {"docs"},
	FeatToken:           {"feat"},
	FixToken:            {"fix"},
	PerfToken:           {"perf"},
	RefactorToken:       {"refactor"},
	RevertToken:         {"revert"},
	StyleToken:          {"style"},
	TestToken:           {"test"},
	BumpToken:           {"bump"},
	BreakingChangeToken: {"BREAKING CHANGE"},
}

// ParseToken parses a string and returns the corresponding Token.
// It returns an error if the string doesn't match any known Token.
// Matching is case-sensitive, as the grammar is.
func ParseToken(s string) (Token, error) {
	for t, ids := range TokenIds {
		for _, id := range ids {
			if id == s {
				return t, nil
			}
		}
	}
	return Token(0), fmt.Errorf("unknown commit type: %s", s)
}

// IsToken reports whether s is a member of the fixed commit type set.
func IsToken(s string) bool {
	_, err := ParseToken(s)
	return err == nil
}

// ToString converts the Token value to a string representation.
func (t Token) ToString() string {
	if val, ok := TokenIds[t]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownToken(%d)", t)
}
