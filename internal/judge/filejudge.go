package judge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// FileCheck is a single file assertion: the path must exist relative to
// the workspace, and when Pattern is set its contents must match.
type FileCheck struct {
	Path    string
	Pattern string
}

// FileJudge asserts that expected files exist in the workspace and
// optionally match content patterns. Every assertion is recorded as a
// check on the judgment; the judge passes only if all assertions hold.
type FileJudge struct {
	name     string
	checks   []FileCheck
	patterns []*regexp.Regexp // index-aligned with checks; nil when no pattern
}

// NewFileJudge compiles the check patterns up front so configuration
// mistakes surface at construction, not mid-vote.
func NewFileJudge(name string, checks []FileCheck) (*FileJudge, error) {
	if len(checks) == 0 {
		return nil, fmt.Errorf("%w: at least one file check is required", domain.ErrInvalidArgument)
	}

	patterns := make([]*regexp.Regexp, len(checks))
	for i, c := range checks {
		if c.Path == "" {
			return nil, fmt.Errorf("%w: file check %d has no path", domain.ErrInvalidArgument, i+1)
		}
		if c.Pattern == "" {
			continue
		}
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("file check %q: %w", c.Path, err)
		}
		patterns[i] = re
	}

	return &FileJudge{name: name, checks: checks, patterns: patterns}, nil
}

// Name returns the judge's display name.
func (f *FileJudge) Name() string { return f.name }

// Judge evaluates every file check against jc.Workspace.
func (f *FileJudge) Judge(_ context.Context, jc domain.JudgmentContext) (domain.Judgment, error) {
	results := make([]domain.Check, 0, len(f.checks))
	failures := 0

	for i, c := range f.checks {
		path := c.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(jc.Workspace, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			failures++
			results = append(results, domain.Check{
				Name:   c.Path,
				Passed: false,
				Detail: fmt.Sprintf("not readable: %v", err),
			})
			continue
		}

		if re := f.patterns[i]; re != nil && !re.Match(data) {
			failures++
			results = append(results, domain.Check{
				Name:   c.Path,
				Passed: false,
				Detail: fmt.Sprintf("content does not match %q", c.Pattern),
			})
			continue
		}

		results = append(results, domain.Check{Name: c.Path, Passed: true})
	}

	passed := len(f.checks) - failures
	if failures > 0 {
		j := domain.NewFail(domain.BooleanScore{Value: false},
			fmt.Sprintf("%d of %d file checks failed", failures, len(f.checks)))
		j.Checks = results
		return j, nil
	}

	j := domain.NewPass(domain.BooleanScore{Value: true},
		fmt.Sprintf("All %d file checks passed", passed))
	j.Checks = results
	return j, nil
}
