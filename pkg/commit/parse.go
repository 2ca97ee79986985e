package commit

import (
	"regexp"
	"strings"
)

// schemaRegex is the strict full-message pattern. A message either matches it
// completely or is not a conventional commit. `(?s)` makes `.` span the body
// and footer paragraphs; exactly one space is required after the colon.
var schemaRegex = regexp.MustCompile(
	`(?s)^` +
		`(build|ci|docs|feat|fix|perf|refactor|style|test|chore|revert|bump)` +
		`(\(\S+\))?!?:` +
		`( [^\n\r]+)` +
		`((\n\n.*)|(\s*))?$`,
)

// extractRegex is the looser pattern used for bump and changelog
// classification. It captures the change type (including the literal
// `BREAKING CHANGE`), the scope between parens, the `!` breaking marker, and
// the remainder of the first line. The trailing `\w+!:` alternative accepts
// any word followed by `!:` as a breaking-change spelling even when the word
// is not a recognized type.
var extractRegex = regexp.MustCompile(
	`^((?P<change_type>feat|fix|refactor|perf|BREAKING CHANGE)` +
		`(?:\((?P<scope>[^()\r\n]*)\)|\()?` +
		`(?P<breaking>!)?` +
		`|\w+!):\s(?P<message>.*)?`,
)

// ExtractSubject validates message against the strict schema and returns the
// trimmed subject line. It returns the empty string when the message is not a
// conventional commit; callers must treat that as "skip", never as a failure.
func ExtractSubject(message string) string {
	match := schemaRegex.FindStringSubmatch(message)
	if len(match) == 0 {
		return ""
	}
	return strings.TrimSpace(match[3])
}

// Extraction is the classifier's view of a commit header.
type Extraction struct {
	ChangeType string
	Scope      string
	Breaking   bool
	Subject    string
}

// Extract matches the first line of a raw commit message against the
// classification pattern. The second return value is false for
// non-conventional messages.
//
// A `word!:` header with an unrecognized word still extracts, with the word
// passed through as the change type and Breaking set.
func Extract(message string) (Extraction, bool) {
	match := extractRegex.FindStringSubmatch(message)
	if len(match) == 0 {
		return Extraction{}, false
	}

	result := make(map[string]string)
	for i, name := range extractRegex.SubexpNames() {
		if i != 0 && name != "" {
			result[name] = match[i]
		}
	}

	ex := Extraction{
		ChangeType: result["change_type"],
		Scope:      result["scope"],
		Breaking:   result["breaking"] == "!",
		Subject:    strings.TrimSpace(result["message"]),
	}

	// the `word!:` alternative leaves change_type empty
	if ex.ChangeType == "" {
		head := strings.TrimSuffix(match[1], "!")
		ex.ChangeType = head
		ex.Breaking = true
	}

	return ex, true
}

var headerRegex = regexp.MustCompile(`^(?P<type>\w+)(\((?P<scope>[\w\-\.\/]+)\))?(!)?: (?P<message>.+)$`)

// ParseMessage parses a full commit message into its structured parts. A
// message that does not follow the conventional header keeps its first line
// as the Subject with an empty Type.
func ParseMessage(message string) Message {
	header, rest, _ := strings.Cut(message, "\n")

	m := Message{}

	match := headerRegex.FindStringSubmatch(header)
	if len(match) == 0 {
		m.Subject = header
	} else {
		m.Type = match[1]
		m.Scope = match[3]
		m.Breaking = match[4] != ""
		m.Subject = match[5]
	}

	body := strings.TrimSpace(rest)
	if body == "" {
		return m
	}

	// a trailing paragraph opening with the breaking change prefix is the
	// footer; everything before it is the body
	if idx := strings.LastIndex(body, "\n\n"+strings.TrimSpace(BreakingChangePrefix)); idx >= 0 {
		m.Body = strings.TrimSpace(body[:idx])
		m.Footer = strings.TrimSpace(strings.TrimPrefix(body[idx+2:], strings.TrimSpace(BreakingChangePrefix)))
		m.Breaking = true
		return m
	}
	if after, ok := strings.CutPrefix(body, strings.TrimSpace(BreakingChangePrefix)); ok {
		m.Footer = strings.TrimSpace(after)
		m.Breaking = true
		return m
	}

	m.Body = body
	return m
}
