package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrFormatFailed indicates that a formatting strategy could not produce a display string.
// It is only ever observed between formatter tiers; it never reaches API callers.
var ErrFormatFailed = errors.New("formatting failed")
