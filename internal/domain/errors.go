package domain

import (
	"errors"
	"fmt"
)

var (
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountBusy     = errors.New("account sync already in progress")
	ErrAccountGone     = errors.New("external account not found at provider")
)

// TransientError is a network or server side failure of the provider.
type TransientError struct {
	Op  Operation
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// ValidationError marks a malformed provider item; the item is skipped.
type ValidationError struct {
	ExternalID string
	Err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid item %q: %v", e.ExternalID, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// PersistenceError is a failed store write or read.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsTransient(err error) bool {
	var t *TransientError
	return errors.As(err, &t)
}
