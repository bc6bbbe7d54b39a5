// Package prompt retrieves confirmation input from the user via a terminal.
package prompt

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// Prompt abstracts the survey question runner so tests can substitute
// their own answers.
type Prompt func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// New returns a Prompt with default configuration.
func New() Prompt {
	return survey.AskOne
}

// Confirm asks a yes/no question defaulting to no. It fails closed: a
// read error or a closed input stream counts as "no", never as consent.
func (p Prompt) Confirm(message, help string) bool {
	confirm := &survey.Confirm{
		Message: message,
		Help:    help,
		Default: false,
	}
	var answer bool
	if err := p(confirm, &answer, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)); err != nil {
		return false
	}
	return answer
}
