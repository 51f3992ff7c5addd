package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrObjectNotFound indicates that a referenced object does not exist or is archived.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectAlreadyExists indicates a uniqueness violation, such as a duplicate
	// business-unit code or a duplicate fulfillment assignment.
	ErrObjectAlreadyExists = errors.New("object already exists")
	// ErrLimitExceeded indicates that a cardinality or capacity limit would be violated.
	ErrLimitExceeded = errors.New("limit exceeded")
	// ErrInvalidState indicates that the requested transition conflicts with the
	// current state of the aggregate, such as stock exceeding capacity.
	ErrInvalidState = errors.New("invalid state")
	// ErrValueIsInvalid indicates that a supplied value is malformed.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsRequired indicates that a required value is missing.
	ErrValueIsRequired = errors.New("value is required")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " "), "\r", " ")
}

// ObjectNotFoundError reports that an object identified by ID could not be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a uniqueness violation for the object identified by ID.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without a cause.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping a cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, sanitize(e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// LimitExceededError reports that creating the object would push an aggregate
// past a configured limit. It carries both the limit and the current count so
// callers can render an actionable message.
type LimitExceededError struct {
	ParamName string
	Limit     int
	Current   int
	Cause     error
}

// NewLimitExceededError creates a LimitExceededError without a cause.
func NewLimitExceededError(paramName string, limit int, current int) *LimitExceededError {
	return &LimitExceededError{ParamName: paramName, Limit: limit, Current: current}
}

// NewLimitExceededErrorWithCause creates a LimitExceededError wrapping a cause.
func NewLimitExceededErrorWithCause(paramName string, limit int, current int, cause error) *LimitExceededError {
	return &LimitExceededError{ParamName: paramName, Limit: limit, Current: current, Cause: cause}
}

func (e *LimitExceededError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s, limit is %d, current count is %d (cause: %s)",
			ErrLimitExceeded, sanitize(e.ParamName), e.Limit, e.Current, e.Cause)
	}
	return fmt.Sprintf("%s: %s, limit is %d, current count is %d",
		ErrLimitExceeded, sanitize(e.ParamName), e.Limit, e.Current)
}

func (e *LimitExceededError) Unwrap() error {
	return ErrLimitExceeded
}

// InvalidStateError reports that a mutation conflicts with current aggregate state.
type InvalidStateError struct {
	ParamName string
	Message   string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError without a cause.
func NewInvalidStateError(paramName string, message string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Message: message}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping a cause.
func NewInvalidStateErrorWithCause(paramName string, message string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Message: message, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, sanitize(e.Message), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState, sanitize(e.Message))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ValueIsInvalidError reports that the named parameter holds a malformed value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that the named parameter is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
