package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ForbiddenError represents a mutation attempted by a non-owner.
type ForbiddenError struct {
	Resource string
}

func (e ForbiddenError) Error() string {
	if e.Resource == "" {
		return "forbidden"
	}
	return fmt.Sprintf("not allowed to modify this %s", e.Resource)
}

// Is enables errors.Is matching on ForbiddenError.
func (e ForbiddenError) Is(target error) bool {
	_, ok := target.(ForbiddenError)
	if ok {
		return true
	}
	_, ok = target.(*ForbiddenError)
	return ok
}

// ErrForbidden is the sentinel error for ownership violations.
var ErrForbidden = ForbiddenError{}

// InvalidInputError represents a request that fails domain validation.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	if e.Reason == "" {
		return "invalid input"
	}
	return e.Reason
}

// Is enables errors.Is matching on InvalidInputError.
func (e InvalidInputError) Is(target error) bool {
	_, ok := target.(InvalidInputError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidInputError)
	return ok
}

// ErrInvalidInput is the sentinel error for validation failures.
var ErrInvalidInput = InvalidInputError{}
