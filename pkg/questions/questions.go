// Package questions declares the ordered interactive flow that builds a
// conventional commit message.
package questions

import (
	"github.com/zbiljic/kommit/pkg/commit"
	"github.com/zbiljic/kommit/pkg/i18n"
)

// StepKind selects the prompt widget a step uses.
type StepKind int

const (
	// SelectStep picks one value from a fixed option list.
	SelectStep StepKind = iota
	// InputStep collects free text; an empty answer is allowed unless the
	// step validates otherwise.
	InputStep
	// ConfirmStep collects a yes/no answer.
	ConfirmStep
)

// Option is a single choice of a SelectStep.
type Option struct {
	Value string
	Label string
	Key   string
}

// Step describes one prompt of the flow. Message text is resolved through
// the translation collaborator at construction time; Transform and Validate
// are wired here as well, so the runner stays generic.
type Step struct {
	Name      string
	Kind      StepKind
	Message   string
	Options   []Option
	Transform func(string) (string, error)
	Validate  func(string) error
}

// Answers is the record collected by the flow. It is handed to the message
// composer exactly once; no partial record is ever emitted.
type Answers struct {
	Prefix           string
	Scope            string
	Subject          string
	Body             string
	Footer           string
	IsBreakingChange bool
}

// Message assembles the collected answers into a commit message.
func (a Answers) Message() commit.Message {
	return commit.Message{
		Type:     a.Prefix,
		Scope:    a.Scope,
		Breaking: a.IsBreakingChange,
		Subject:  a.Subject,
		Body:     a.Body,
		Footer:   a.Footer,
	}
}

// typeChoices lists the offered commit types in their fixed prompt order,
// each with its selection shortcut key.
var typeChoices = []struct {
	value string
	key   string
}{
	{"fix", "x"},
	{"feat", "f"},
	{"docs", "d"},
	{"style", "s"},
	{"refactor", "r"},
	{"perf", "p"},
	{"test", "t"},
	{"build", "b"},
	{"ci", "c"},
}

// Steps returns the ordered step descriptors of the flow:
// type-select, scope-input, subject-input, body-input, breaking-confirm,
// footer-input. All user-facing text goes through the translator.
func Steps(language string, tr i18n.Translator) []Step {
	var options []Option
	for _, choice := range typeChoices {
		description := tr.Translate(commit.ConventionalCommitTypes[choice.value], language, choice.value)
		options = append(options, Option{
			Value: choice.value,
			Label: choice.value + ": " + description,
			Key:   choice.key,
		})
	}

	return []Step{
		{
			Name:    "prefix",
			Kind:    SelectStep,
			Message: tr.Translate("Select the type of change you are committing", language, "prefix"),
			Options: options,
		},
		{
			Name:    "scope",
			Kind:    InputStep,
			Message: tr.Translate("What is the scope of this change? (class or file name): (press [enter] to skip)", language, "scope"),
			Transform: func(s string) (string, error) {
				return commit.NormalizeScope(s), nil
			},
		},
		{
			Name:      "subject",
			Kind:      InputStep,
			Message:   tr.Translate("Write a short and imperative summary of the code changes: (lower case and no period)", language, "subject"),
			Transform: commit.CleanSubject,
			Validate: func(s string) error {
				_, err := commit.CleanSubject(s)
				return err
			},
		},
		{
			Name:    "body",
			Kind:    InputStep,
			Message: tr.Translate("Provide additional contextual information about the code changes: (press [enter] to skip)", language, "body"),
			Transform: func(s string) (string, error) {
				return commit.JoinParagraph(s), nil
			},
		},
		{
			Name:    "is_breaking_change",
			Kind:    ConfirmStep,
			Message: tr.Translate("Is this a BREAKING CHANGE? Correlates with MAJOR in SemVer", language, "is_breaking_change"),
		},
		{
			Name:    "footer",
			Kind:    InputStep,
			Message: tr.Translate("Footer. Information about Breaking Changes and reference issues that this commit closes: (press [enter] to skip)", language, "footer"),
		},
	}
}
