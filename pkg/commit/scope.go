package commit

import (
	"errors"
	"strings"
)

// ErrSubjectRequired is returned when the subject is empty after cleaning.
var ErrSubjectRequired = &ValidationError{Msg: "Subject is required."}

// ValidationError reports an answer that failed field validation during the
// interactive flow.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// IsValidationError reports whether err is a field validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NormalizeScope turns free-form scope input into a canonical token:
// surrounding whitespace is stripped and internal whitespace runs are
// replaced with a single hyphen. It is total and idempotent; empty input
// yields the empty string.
func NormalizeScope(text string) string {
	fields := strings.Fields(text)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	default:
		return strings.Join(fields, "-")
	}
}

// CleanSubject strips trailing periods and surrounding whitespace from the
// subject. An empty result fails with ErrSubjectRequired.
func CleanSubject(text string) (string, error) {
	text = strings.Trim(text, ".")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrSubjectRequired
	}
	return text, nil
}

// JoinParagraph turns a single-line body answer into paragraph text. A `|`
// acts as an explicit line break marker, so a body can be entered on one
// prompt line and still render as multiple lines.
func JoinParagraph(text string) string {
	parts := strings.Split(text, "|")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	var lines []string
	for _, part := range parts {
		if part != "" {
			lines = append(lines, part)
		}
	}
	return strings.Join(lines, "\n")
}
