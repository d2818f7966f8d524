// Package prompt fills the estimator form one question at a time, for
// terminals where the full-screen interface cannot run.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/vovakirdan/hostcost/internal/form"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl+C.
var ErrInterrupted = errors.New("prompt: interrupted")

// InputConfig configures a single text question.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the prompt implementation so the flow can be tested
// without a real terminal.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

// SurveyDriver asks questions with AlecAivazis/survey.
type SurveyDriver struct{}

// Input asks a single question.
func (SurveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	q := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, ok := ans.(string)
			if !ok {
				return fmt.Errorf("expected text answer, got %T", ans)
			}
			return validate(s)
		}))
	}
	if err := survey.AskOne(q, &out, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return out, nil
}

// ValidateDigits accepts an empty answer or one made only of ASCII digits.
func ValidateDigits(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%q is not a whole number", s)
		}
	}
	return nil
}

// Fill asks for every field of f in order, offering the current value as the
// default, and stores each answer. The selection cursor follows the question.
func Fill(ctx context.Context, d Driver, f *form.Form) error {
	for i, n := 0, f.Len(); i < n; i++ {
		f.Select(i)
		fd := f.Field(i)

		ans, err := d.Input(ctx, InputConfig{
			Message:   fd.Label + ":",
			Default:   fd.Value,
			Help:      "Whole number; leave empty for 0.",
			Validator: ValidateDigits,
		})
		if err != nil {
			return fmt.Errorf("asking %s: %w", fd.Label, err)
		}
		f.SetValue(i, ans)
	}
	f.Select(0)
	return nil
}
