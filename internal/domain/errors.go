package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Question bank errors
	ErrUnmatchedCategory      ErrorCode = "UNMATCHED_CATEGORY"
	ErrMissingRequiredColumn  ErrorCode = "MISSING_REQUIRED_COLUMN"
	ErrInsufficientAnswerPool ErrorCode = "INSUFFICIENT_ANSWER_POOL"
	ErrInvalidCorrectAnswer   ErrorCode = "INVALID_CORRECT_ANSWER"
	ErrUnknownBankType        ErrorCode = "UNKNOWN_BANK_TYPE"

	// Page errors
	ErrMalformedTagStructure      ErrorCode = "MALFORMED_TAG_STRUCTURE"
	ErrDuplicateSectionIdentifier ErrorCode = "DUPLICATE_SECTION_IDENTIFIER"
)

// Error represents a domain-specific error
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code, so callers can test with
// errors.Is(err, &domain.Error{Code: domain.ErrUnmatchedCategory}).
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// NewError creates a new domain Error
func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the code of the first domain error in the chain, or "".
func CodeOf(err error) ErrorCode {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Helper functions for common errors

func NewUnmatchedCategoryError(column, value string) *Error {
	return NewError(ErrUnmatchedCategory, fmt.Sprintf("no answer matches %s value %q", column, value), nil)
}

func NewMissingRequiredColumnError(columns []string) *Error {
	return NewError(ErrMissingRequiredColumn, fmt.Sprintf("missing required columns: %v", columns), nil)
}

func NewInsufficientAnswerPoolError(requested, available int) *Error {
	return NewError(ErrInsufficientAnswerPool, fmt.Sprintf("requested %d choices from a pool of %d", requested, available), nil)
}

func NewInvalidCorrectAnswerError(index int) *Error {
	return NewError(ErrInvalidCorrectAnswer, fmt.Sprintf("correct answer %d does not reference a non-empty choice", index), nil)
}

func NewUnknownBankTypeError(name string, known []string) *Error {
	return NewError(ErrUnknownBankType, fmt.Sprintf("unknown bank type %q (available: %v)", name, known), nil)
}

func NewMalformedTagStructureError(tag string, line int, message string) *Error {
	return NewError(ErrMalformedTagStructure, fmt.Sprintf("<%s> at line %d: %s", tag, line, message), nil)
}

func NewDuplicateSectionIdentifierError(id string) *Error {
	return NewError(ErrDuplicateSectionIdentifier, fmt.Sprintf("duplicate section identifier %q", id), nil)
}
