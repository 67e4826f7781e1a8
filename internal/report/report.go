// Package report renders verdicts for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/agentic-jury/internal/domain"
	"github.com/anthropics/agentic-jury/internal/terminal"
)

// RenderVerdict renders a terminal report for a completed jury vote.
func RenderVerdict(v domain.Verdict, wallClock time.Duration) string {
	width := terminal.ReportWidth()

	var lines []string
	lines = append(lines, "")
	lines = append(lines, headline(v.Aggregated, wallClock))
	lines = append(lines, terminal.Ruler(width, "━"))

	if v.Aggregated.Reasoning != "" {
		lines = append(lines, terminal.WrapText(v.Aggregated.Reasoning, width-3, "  "))
	}

	lines = append(lines, renderIndividual(v, width, "")...)

	return strings.Join(lines, "\n")
}

// headline formats the top-level pass/fail line.
func headline(j domain.Judgment, wallClock time.Duration) string {
	glyph, color, label := statusDecoration(j.Status)
	elapsed := ""
	if wallClock > 0 {
		elapsed = fmt.Sprintf(" %s(%s)%s",
			terminal.Color(terminal.Dim), terminal.FormatDuration(wallClock), terminal.Color(terminal.Reset))
	}
	return fmt.Sprintf("%s%s %s%s%s%s",
		terminal.Color(color), glyph,
		terminal.Color(terminal.Bold), label,
		terminal.Color(terminal.Reset), elapsed)
}

// renderIndividual renders per-judge rows and recurses into sub-verdicts.
func renderIndividual(v domain.Verdict, width int, indent string) []string {
	var lines []string

	for _, nj := range v.Individual {
		glyph, color, _ := statusDecoration(nj.Judgment.Status)
		row := fmt.Sprintf("%s  %s%s%s %s%s%s",
			indent,
			terminal.Color(color), glyph, terminal.Color(terminal.Reset),
			terminal.Color(terminal.Bold), nj.Name, terminal.Color(terminal.Reset))
		if s := scoreSummary(nj.Judgment.Score); s != "" {
			row += fmt.Sprintf(" %s%s%s", terminal.Color(terminal.Dim), s, terminal.Color(terminal.Reset))
		}
		lines = append(lines, row)

		if nj.Judgment.Reasoning != "" {
			lines = append(lines, terminal.WrapText(nj.Judgment.Reasoning, width-5, indent+"     "))
		}

		for _, c := range nj.Judgment.Checks {
			mark := "✓"
			markColor := terminal.Green
			if !c.Passed {
				mark = "✗"
				markColor = terminal.Red
			}
			check := fmt.Sprintf("%s     %s%s%s %s",
				indent, terminal.Color(markColor), mark, terminal.Color(terminal.Reset), c.Name)
			if c.Detail != "" {
				check += fmt.Sprintf(" %s— %s%s", terminal.Color(terminal.Dim), c.Detail, terminal.Color(terminal.Reset))
			}
			lines = append(lines, check)
		}
	}

	for i, sub := range v.SubVerdicts {
		name := fmt.Sprintf("Jury#%d", i+1)
		if i < len(v.Individual) {
			name = v.Individual[i].Name
		}
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("%s  %sSub-jury %s%s",
			indent, terminal.Color(terminal.Magenta), name, terminal.Color(terminal.Reset)))
		lines = append(lines, indent+"  "+terminal.Ruler(width-len(indent)-2, "─"))
		lines = append(lines, renderIndividual(sub, width, indent+"  ")...)
	}

	return lines
}

// scoreSummary renders a compact score annotation for a judge row.
func scoreSummary(s domain.Score) string {
	switch sc := s.(type) {
	case nil:
		return ""
	case domain.BooleanScore:
		return ""
	case domain.NumericalScore:
		n, err := sc.Normalized()
		if err != nil {
			return ""
		}
		return fmt.Sprintf("(%.2f)", n)
	case domain.CategoricalScore:
		return fmt.Sprintf("(%s)", sc.Value)
	default:
		return ""
	}
}

// statusDecoration maps a status to its glyph, color, and label.
func statusDecoration(s domain.Status) (glyph, color, label string) {
	switch s {
	case domain.StatusPass:
		return "✓", terminal.Green, "PASS"
	case domain.StatusFail:
		return "✗", terminal.Red, "FAIL"
	case domain.StatusAbstain:
		return "–", terminal.Yellow, "ABSTAIN"
	default:
		return "!", terminal.Red, "ERROR"
	}
}
