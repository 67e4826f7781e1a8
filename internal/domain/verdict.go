package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NamedJudgment pairs a judge's display name with its judgment.
// A slice of these preserves evaluation order, which Go maps cannot.
type NamedJudgment struct {
	Name     string
	Judgment Judgment
}

// Verdict is the full output of one jury vote: the aggregated judgment,
// every individual judgment keyed by judge name, and (for meta-juries)
// the verdicts of the sub-juries that produced the inputs.
type Verdict struct {
	ID          string
	Aggregated  Judgment
	Individual  []NamedJudgment
	SubVerdicts []Verdict
	Timestamp   time.Time
}

// NewVerdict assembles a verdict, assigning it an ID and timestamp.
// Duplicate judge names in individual are disambiguated with -2, -3, …
// suffixes in encounter order, so ByName lookups stay unambiguous.
func NewVerdict(aggregated Judgment, individual []NamedJudgment, subVerdicts []Verdict) Verdict {
	names := make([]string, len(individual))
	for i, nj := range individual {
		names[i] = nj.Name
	}
	names = DedupeNames(names)

	deduped := make([]NamedJudgment, len(individual))
	for i, nj := range individual {
		deduped[i] = NamedJudgment{Name: names[i], Judgment: nj.Judgment}
	}

	return Verdict{
		ID:          uuid.NewString(),
		Aggregated:  aggregated,
		Individual:  deduped,
		SubVerdicts: subVerdicts,
		Timestamp:   time.Now().UTC(),
	}
}

// Pass reports whether the aggregated judgment passed.
func (v Verdict) Pass() bool {
	return v.Aggregated.Pass()
}

// ByName returns the individual judgment recorded under name.
func (v Verdict) ByName(name string) (Judgment, bool) {
	for _, nj := range v.Individual {
		if nj.Name == name {
			return nj.Judgment, true
		}
	}
	return Judgment{}, false
}

// Names returns the individual judge names in evaluation order.
func (v Verdict) Names() []string {
	names := make([]string, len(v.Individual))
	for i, nj := range v.Individual {
		names[i] = nj.Name
	}
	return names
}

// DedupeNames makes every name unique while preserving order. The first
// occurrence keeps the bare name; each subsequent collision gets a numeric
// suffix (-2, -3, …) in encounter order. Deterministic for a given input.
func DedupeNames(names []string) []string {
	seen := make(map[string]int, len(names))
	result := make([]string, len(names))

	for i, name := range names {
		seen[name]++
		if seen[name] == 1 {
			result[i] = name
			continue
		}
		candidate := fmt.Sprintf("%s-%d", name, seen[name])
		// A literal "name-2" may already be taken; keep counting.
		for {
			if _, taken := seen[candidate]; !taken {
				break
			}
			seen[name]++
			candidate = fmt.Sprintf("%s-%d", name, seen[name])
		}
		seen[candidate] = 1
		result[i] = candidate
	}

	return result
}
