package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a price amount that is not a finite number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidExchangeRate indicates a conversion was requested with a rate that is zero or negative.
var ErrInvalidExchangeRate = errors.New("invalid exchange rate")

// ErrMissingCredentials is returned when either admin credential is empty after trimming.
var ErrMissingCredentials = errors.New("missing credentials")

// ErrInvalidCredentials is returned when no credential source accepts the supplied pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAuthServer is returned when a credential source could not be consulted
// (store unreachable, lookup timed out). Callers must not expose the wrapped cause.
var ErrAuthServer = errors.New("server error")
