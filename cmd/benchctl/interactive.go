package main

import (
	"github.com/AlecAivazis/survey/v2"

	"benchctl/internal/harness"
)

// askOne allows mocking survey prompts in tests.
var askOne = survey.AskOne

// promptSelection asks for the target and export format, defaulting to the
// values already supplied via flags.
func promptSelection(targetDefault, exportDefault string) (string, string, error) {
	target := targetDefault
	if err := askOne(&survey.Select{
		Message: "Which benchmarks should run?",
		Options: harness.TargetNames(),
		Default: targetDefault,
	}, &target); err != nil {
		return "", "", err
	}

	export := exportDefault
	if err := askOne(&survey.Select{
		Message: "How should results be exported?",
		Options: harness.ExportFormatNames(),
		Default: exportDefault,
	}, &export); err != nil {
		return "", "", err
	}

	return target, export, nil
}
