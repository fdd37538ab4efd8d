package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// RedirectError is a step-precondition failure: required workflow parameters
// are missing or unparseable. It is recoverable by sending the traveler back
// to an earlier step, never fatal.
type RedirectError struct {
	Target string // safe step to return to, e.g. "/search"
	Msg    string // user-visible notice
	Err    error
}

func (e RedirectError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "redirect to " + e.Target
}

func (e RedirectError) Unwrap() error { return e.Err }

// CapacityError reports a passenger-count or seat-availability violation.
// The draft must be left unchanged when one is returned.
type CapacityError struct {
	Msg string
}

func (e CapacityError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "capacity exceeded"
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsRedirect(err error) bool {
	var target RedirectError
	return errors.As(err, &target)
}

// AsRedirect returns the redirect details when err carries them.
func AsRedirect(err error) (RedirectError, bool) {
	var target RedirectError
	ok := errors.As(err, &target)
	return target, ok
}

func IsCapacity(err error) bool {
	var target CapacityError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
