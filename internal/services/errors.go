package services

import "errors"

// ErrValidation marks input errors. Services wrap it with the concrete
// reason so handlers can map the whole family to 400.
var ErrValidation = errors.New("validation failed")
