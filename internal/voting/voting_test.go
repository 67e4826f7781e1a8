package voting

import (
	"github.com/anthropics/agentic-jury/internal/domain"
)

// Shared builders for strategy tests.

func passJ(name string) domain.NamedJudgment {
	return domain.NamedJudgment{Name: name, Judgment: domain.NewPass(domain.BooleanScore{Value: true}, "ok")}
}

func failJ(name string) domain.NamedJudgment {
	return domain.NamedJudgment{Name: name, Judgment: domain.NewFail(domain.BooleanScore{Value: false}, "nope")}
}

func abstainJ(name string) domain.NamedJudgment {
	return domain.NamedJudgment{Name: name, Judgment: domain.NewAbstain("no opinion")}
}

func errorJ(name string) domain.NamedJudgment {
	return domain.NamedJudgment{Name: name, Judgment: domain.NewError(nil)}
}

func scoreJ(name string, value float64) domain.NamedJudgment {
	j := domain.Judgment{
		Status: domain.StatusPass,
		Score:  domain.NumericalScore{Value: value, Min: 0, Max: 1},
	}
	if value < 0.5 {
		j.Status = domain.StatusFail
	}
	return domain.NamedJudgment{Name: name, Judgment: j}
}
