package domain

import "errors"

// ErrInvalidArgument indicates a contract violation by the caller:
// empty or nil judgment lists, nil judges or juries, nil strategies.
// These are surfaced synchronously and never recovered into judgments.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownCategory indicates a categorical score whose value is not
// covered by its category map. This is a configuration mistake, distinct
// from a missing score, and fails the aggregation rather than defaulting.
var ErrUnknownCategory = errors.New("unknown category")
