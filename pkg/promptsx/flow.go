// Package promptsx extends the go-clack prompt widgets used by the CLI.
package promptsx

import (
	"github.com/orochaa/go-clack/prompts"

	"github.com/zbiljic/kommit/pkg/questions"
)

// Compile-time proof of interface implementation.
var _ questions.Prompter = (*FlowPrompter)(nil)

// FlowPrompter drives the question flow with go-clack widgets. Validation
// runs inside the text prompt, so an invalid subject re-prompts in place
// instead of aborting the flow.
type FlowPrompter struct{}

func NewFlowPrompter() *FlowPrompter {
	return &FlowPrompter{}
}

func (*FlowPrompter) Select(message string, options []questions.Option) (string, error) {
	var selectOptions []*prompts.SelectOption[string]
	for _, option := range options {
		selectOptions = append(selectOptions, &prompts.SelectOption[string]{
			Label: option.Label,
			Value: option.Value,
		})
	}

	return prompts.Select(prompts.SelectParams[string]{
		Message: message,
		Options: selectOptions,
	})
}

func (*FlowPrompter) Input(message string, validate func(string) error) (string, error) {
	return prompts.Text(prompts.TextParams{
		Message:  message,
		Validate: validate,
	})
}

func (*FlowPrompter) Confirm(message string, initialValue bool) (bool, error) {
	return prompts.Confirm(prompts.ConfirmParams{
		Message:      message,
		InitialValue: initialValue,
	})
}
