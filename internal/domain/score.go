package domain

import "fmt"

// Score is the polymorphic result of one evaluator. The variant set is
// closed: BooleanScore, NumericalScore, and CategoricalScore. Every variant
// normalizes to [0, 1] so numeric strategies can consume them uniformly.
type Score interface {
	// Normalized maps the score onto [0, 1].
	Normalized() (float64, error)

	score()
}

// BooleanScore is a pass/fail score.
type BooleanScore struct {
	Value bool
}

// Normalized returns 1.0 for true, 0.0 for false.
func (s BooleanScore) Normalized() (float64, error) {
	if s.Value {
		return 1.0, nil
	}
	return 0.0, nil
}

func (BooleanScore) score() {}

// NumericalScore is a value within an explicit [Min, Max] range.
type NumericalScore struct {
	Value float64
	Min   float64
	Max   float64
}

// NewNumericalScore validates that min <= value <= max.
func NewNumericalScore(value, min, max float64) (NumericalScore, error) {
	if min > max {
		return NumericalScore{}, fmt.Errorf("%w: min %v greater than max %v", ErrInvalidArgument, min, max)
	}
	if value < min || value > max {
		return NumericalScore{}, fmt.Errorf("%w: value %v outside range [%v, %v]", ErrInvalidArgument, value, min, max)
	}
	return NumericalScore{Value: value, Min: min, Max: max}, nil
}

// Normalized returns (Value-Min)/(Max-Min). A degenerate range (Max == Min)
// yields 0.0 rather than an error; the range carries no information.
func (s NumericalScore) Normalized() (float64, error) {
	if s.Max == s.Min {
		return 0.0, nil
	}
	return (s.Value - s.Min) / (s.Max - s.Min), nil
}

func (NumericalScore) score() {}

// CategoricalScore maps a category label to a normalized contribution.
type CategoricalScore struct {
	Value      string
	Categories map[string]float64
}

// Normalized looks up the value in the category map. A missing key fails
// with ErrUnknownCategory: unlike a degenerate numeric range, an unmapped
// category is a configuration mistake and is never silently defaulted.
func (s CategoricalScore) Normalized() (float64, error) {
	v, ok := s.Categories[s.Value]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s.Value)
	}
	return v, nil
}

func (CategoricalScore) score() {}
