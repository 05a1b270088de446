package domain

import "errors"

// ErrValidation is the root of all entity validation errors. Field-specific
// errors wrap it so callers can classify a failure with a single errors.Is
// check instead of enumerating every field error.
var ErrValidation = errors.New("validation failed")
