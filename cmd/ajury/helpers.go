package main

import (
	"fmt"

	"github.com/anthropics/agentic-jury/internal/config"
	"github.com/anthropics/agentic-jury/internal/domain"
	"github.com/anthropics/agentic-jury/internal/judge"
	"github.com/anthropics/agentic-jury/internal/jury"
)

// exitCodeError is a wrapper type for returning exit codes via error interface.
type exitCodeError struct {
	code domain.ExitCode
}

func (e exitCodeError) Error() string {
	switch e.code {
	case domain.ExitFail:
		return "jury vote failed"
	case domain.ExitError:
		return "vote failed with error"
	case domain.ExitInterrupted:
		return "vote was interrupted"
	default:
		return fmt.Sprintf("exit code %d", e.code)
	}
}

func exitCode(code domain.ExitCode) error {
	if code == domain.ExitPass {
		return nil
	}
	return exitCodeError{code: code}
}

// buildJudges constructs the configured judges in declaration order.
func buildJudges(configs []config.JudgeConfig) ([]jury.Judge, error) {
	judges := make([]jury.Judge, 0, len(configs))

	for i, jc := range configs {
		var (
			j   jury.Judge
			err error
		)
		switch jc.Kind {
		case "file":
			checks := make([]judge.FileCheck, len(jc.Files))
			for k, f := range jc.Files {
				checks[k] = judge.FileCheck{Path: f.Path, Pattern: f.Pattern}
			}
			j, err = judge.NewFileJudge(jc.Name, checks)
		case "command":
			j, err = judge.NewCommandJudge(jc.Name, jc.Command, jc.Args...)
		case "agent":
			j, err = judge.NewAgentJudge(jc.Name, jc.Command, jc.Args...)
		default:
			err = fmt.Errorf("%w: unknown judge kind %q", domain.ErrInvalidArgument, jc.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("judge %d: %w", i+1, err)
		}
		judges = append(judges, j)
	}

	return judges, nil
}
