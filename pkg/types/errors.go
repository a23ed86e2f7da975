package types

import "errors"

// Configuration errors. These are programming or wiring mistakes and fail
// fast rather than being recovered.
var (
	ErrNotTable         = errors.New("not a recognized table handle")
	ErrUnknownCondition = errors.New("unknown condition name or key")
	ErrDuplicateKey     = errors.New("duplicate condition key")
	ErrNoConditions     = errors.New("no conditions enabled")
	ErrInvalidSetting   = errors.New("invalid conditions setting")
)

// Table operation errors.
var (
	ErrInvalidColumnOrder = errors.New("column order is not a permutation")
)
