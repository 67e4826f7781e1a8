package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/anthropics/agentic-jury/internal/domain"
)

const gradePrompt = `# Work Grader

You are grading the output of an autonomous coding agent.

Goal the agent was given:
%s

Agent output:
%s

Task: decide how well the output accomplishes the goal.

Output format (JSON only, no extra prose):
{
  "score": 0.0,
  "reasoning": "1-3 sentence justification"
}

Rules:
- Return ONLY valid JSON.
- "score" is a number between 0.0 (complete failure) and 1.0 (fully accomplished).
- Judge the output against the goal, not against style preferences.`

// AgentJudge grades agent output by shelling out to an LLM agent CLI
// (prompt on stdin, JSON judgment on stdout) and parsing the response
// into a numerical score.
type AgentJudge struct {
	name    string
	command string
	args    []string
}

// NewAgentJudge creates an agent-graded judge. The command must accept a
// prompt on stdin and print its answer to stdout (for example
// "claude --print -" or "codex exec --color never -").
func NewAgentJudge(name, command string, args ...string) (*AgentJudge, error) {
	if command == "" {
		return nil, fmt.Errorf("%w: agent command is required", domain.ErrInvalidArgument)
	}
	return &AgentJudge{name: name, command: command, args: args}, nil
}

// Name returns the judge's display name.
func (a *AgentJudge) Name() string { return a.name }

// IsAvailable checks that the agent CLI is installed and accessible.
func (a *AgentJudge) IsAvailable() error {
	if _, err := exec.LookPath(a.command); err != nil {
		return fmt.Errorf("%s CLI not found in PATH: %w", a.command, err)
	}
	return nil
}

// Judge sends the grading prompt to the agent CLI and parses the JSON
// response. Malformed output and non-zero exits are evaluation errors.
func (a *AgentJudge) Judge(ctx context.Context, jc domain.JudgmentContext) (domain.Judgment, error) {
	prompt := fmt.Sprintf(gradePrompt, jc.Goal, jc.AgentOutput)

	res, err := runCommand(ctx, a.command, a.args, bytes.NewReader([]byte(prompt)), jc.Workspace)
	if err != nil {
		return domain.Judgment{}, err
	}
	if res.ExitCode != 0 {
		return domain.Judgment{}, fmt.Errorf("%s exited %d: %s", a.command, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	grade, err := parseGrade(res.Stdout)
	if err != nil {
		return domain.Judgment{}, err
	}

	score := domain.NumericalScore{Value: grade.Score, Min: 0, Max: 1}
	reasoning := grade.Reasoning
	if reasoning == "" {
		reasoning = fmt.Sprintf("agent graded %.2f", grade.Score)
	}
	if grade.Score >= 0.5 {
		return domain.NewPass(score, reasoning), nil
	}
	return domain.NewFail(score, reasoning), nil
}

// grade is the JSON shape the grading prompt demands.
type grade struct {
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// parseGrade extracts the JSON grade from agent output. Agents sometimes
// wrap the JSON in code fences or preamble text, so the parse starts at
// the first opening brace.
func parseGrade(out string) (grade, error) {
	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "}")
	if start < 0 || end < start {
		return grade{}, fmt.Errorf("no JSON object in agent output")
	}

	var g grade
	if err := json.Unmarshal([]byte(out[start:end+1]), &g); err != nil {
		return grade{}, fmt.Errorf("malformed agent grade: %w", err)
	}
	if g.Score < 0 || g.Score > 1 {
		return grade{}, fmt.Errorf("agent grade %v outside [0, 1]", g.Score)
	}
	return g, nil
}
