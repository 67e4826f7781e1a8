package judge

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// maxStderrExcerpt bounds how much captured stderr lands in reasoning.
const maxStderrExcerpt = 400

// CommandJudge runs a command (typically a build or test invocation) in
// the workspace and passes on exit code zero.
type CommandJudge struct {
	name    string
	command string
	args    []string
}

// NewCommandJudge creates a command judge.
func NewCommandJudge(name, command string, args ...string) (*CommandJudge, error) {
	if command == "" {
		return nil, fmt.Errorf("%w: command is required", domain.ErrInvalidArgument)
	}
	return &CommandJudge{name: name, command: command, args: args}, nil
}

// Name returns the judge's display name.
func (c *CommandJudge) Name() string { return c.name }

// Judge runs the configured command in jc.Workspace. Exit 0 passes; any
// other exit fails with a stderr excerpt in the reasoning. Failing to
// launch at all is an evaluation error, which the jury records as an
// error-status judgment.
func (c *CommandJudge) Judge(ctx context.Context, jc domain.JudgmentContext) (domain.Judgment, error) {
	res, err := runCommand(ctx, c.command, c.args, nil, jc.Workspace)
	if err != nil {
		return domain.Judgment{}, err
	}

	line := strings.Join(append([]string{c.command}, c.args...), " ")
	if res.ExitCode == 0 {
		return domain.NewPass(domain.BooleanScore{Value: true},
			fmt.Sprintf("%q exited 0", line)), nil
	}

	reasoning := fmt.Sprintf("%q exited %d", line, res.ExitCode)
	if excerpt := strings.TrimSpace(res.Stderr); excerpt != "" {
		if len(excerpt) > maxStderrExcerpt {
			excerpt = excerpt[:maxStderrExcerpt] + "..."
		}
		reasoning += ": " + excerpt
	}
	return domain.NewFail(domain.BooleanScore{Value: false}, reasoning), nil
}
