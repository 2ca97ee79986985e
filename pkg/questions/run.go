package questions

import (
	"fmt"
)

// Prompter is the terminal widget collaborator the flow suspends on. The
// Validate function handed to Input lets interactive implementations
// re-prompt on invalid answers; non-interactive ones may ignore it and let
// the runner abort instead.
type Prompter interface {
	Select(message string, options []Option) (string, error)
	Input(message string, validate func(string) error) (string, error)
	Confirm(message string, initialValue bool) (bool, error)
}

// Run walks the steps strictly in order, collecting one field per step. Any
// prompt or transform error aborts the whole flow; no partial Answers record
// is returned.
func Run(steps []Step, p Prompter) (Answers, error) {
	var answers Answers

	for _, step := range steps {
		var raw string
		var err error

		switch step.Kind {
		case SelectStep:
			raw, err = p.Select(step.Message, step.Options)
		case InputStep:
			raw, err = p.Input(step.Message, step.Validate)
		case ConfirmStep:
			var confirmed bool
			confirmed, err = p.Confirm(step.Message, false)
			if err == nil && step.Name == "is_breaking_change" {
				answers.IsBreakingChange = confirmed
			}
			if err != nil {
				return Answers{}, err
			}
			continue
		}
		if err != nil {
			return Answers{}, err
		}

		if step.Transform != nil {
			raw, err = step.Transform(raw)
			if err != nil {
				return Answers{}, err
			}
		}

		switch step.Name {
		case "prefix":
			answers.Prefix = raw
		case "scope":
			answers.Scope = raw
		case "subject":
			answers.Subject = raw
		case "body":
			answers.Body = raw
		case "footer":
			answers.Footer = raw
		default:
			return Answers{}, fmt.Errorf("unknown step: %s", step.Name)
		}
	}

	return answers, nil
}
