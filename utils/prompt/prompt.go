package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Prompter asks the user yes/no questions. Confirmation prompts default to
// "no"; only an explicit y/yes answer confirms.
type Prompter interface {
	PromptForConfirmation(label string) (bool, error)
}

type RealPrompter struct{}

var ErrInterrupted = errors.New("operation interrupted")

func NewPrompt() Prompter {
	return &RealPrompter{}
}

func (p *RealPrompter) PromptForConfirmation(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, ErrInterrupted
		}
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return strings.HasPrefix(strings.ToLower(result), "y"), nil
}
