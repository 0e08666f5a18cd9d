// Package prompt asks the user for the few things the pipeline cannot work out.
package prompt

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks questions on the terminal.
type Prompter interface {
	// Input asks a free form question and returns the raw answer.
	Input(message string) (string, error)
	// Directory asks for a directory, offering def and path completion.
	Directory(message, def string) (string, error)
}

// Survey is the interactive Prompter.
type Survey struct{}

// Input implements Prompter.
func (Survey) Input(message string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		if err == terminal.InterruptErr {
			return "", ErrInterrupted
		}
		return "", err
	}
	return answer, nil
}

// Directory implements Prompter.
func (Survey) Directory(message, def string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: def,
		Suggest: suggestDirs,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		if err == terminal.InterruptErr {
			return "", ErrInterrupted
		}
		return "", err
	}
	return answer, nil
}

func suggestDirs(toComplete string) []string {
	matches, _ := filepath.Glob(toComplete + "*")
	var dirs []string
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.IsDir() {
			dirs = append(dirs, m+string(filepath.Separator))
		}
	}
	return dirs
}
