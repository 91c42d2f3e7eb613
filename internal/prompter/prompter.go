// Package prompter asks the user for input on an interactive terminal.
package prompter

import (
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

//go:generate mockgen -destination ../mocks/prompter_mock.go -package mocks -mock_names Prompter=MockPrompter . Prompter

type Prompter interface {
	Input(prompt, defaultValue string) (string, error)
	Password(prompt string) (string, error)
}

func New(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer) Prompter {
	return &surveyPrompter{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

type surveyPrompter struct {
	stdin  terminal.FileReader
	stdout terminal.FileWriter
	stderr io.Writer
}

func (p *surveyPrompter) ask(q survey.Prompt, response interface{}) error {
	return survey.AskOne(q, response, survey.WithStdio(p.stdin, p.stdout, p.stderr))
}

func (p *surveyPrompter) Input(prompt, defaultValue string) (result string, err error) {
	err = p.ask(&survey.Input{
		Message: prompt,
		Default: defaultValue,
	}, &result)
	return
}

func (p *surveyPrompter) Password(prompt string) (result string, err error) {
	err = p.ask(&survey.Password{
		Message: prompt,
	}, &result)
	return
}
