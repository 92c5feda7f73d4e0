package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found under
// the caller's ownership. Cross-owner access deliberately surfaces as this
// error so existence is never leaked.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that no caller identity could be resolved.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
