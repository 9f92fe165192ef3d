package util

import (
	"errors"
	"llist/linkedlist"
)

const (
	ERROR_BAD_INPUT_PATH       = 201
	ERROR_BAD_INPUT_CONTENT    = 202
	ERROR_EMPTY_LIST           = 301
	ERROR_HETEROGENEOUS_BATCH  = 302
	ERROR_MISSING_KEY          = 303
	ERROR_KEY_NOT_FOUND        = 304
	ERROR_INVALID_CONSTRUCTION = 305
	ERROR_KIND_MISMATCH        = 306
	ERROR_KEY_CONFLICT         = 307
	ERROR_INCOMPARABLE         = 308
	ERROR_GENERIC              = 1
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}

var codesBySentinel = []struct {
	sentinel error
	code     int
}{
	{linkedlist.ErrEmptyList, ERROR_EMPTY_LIST},
	{linkedlist.ErrHeterogeneousBatch, ERROR_HETEROGENEOUS_BATCH},
	{linkedlist.ErrMissingKey, ERROR_MISSING_KEY},
	{linkedlist.ErrKeyNotFound, ERROR_KEY_NOT_FOUND},
	{linkedlist.ErrInvalidConstructionArg, ERROR_INVALID_CONSTRUCTION},
	{linkedlist.ErrKindMismatch, ERROR_KIND_MISMATCH},
	{linkedlist.ErrKeyConflict, ERROR_KEY_CONFLICT},
	{linkedlist.ErrIncomparable, ERROR_INCOMPARABLE},
}

// CodeFor returns the exit code for err: the code it already carries, the
// code of the list error it wraps, or ERROR_GENERIC.
func CodeFor(err error) int {
	var withCode *ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.StatusCode
	}
	var withCodeValue ErrorWithCode
	if errors.As(err, &withCodeValue) {
		return withCodeValue.StatusCode
	}
	for _, entry := range codesBySentinel {
		if errors.Is(err, entry.sentinel) {
			return entry.code
		}
	}
	return ERROR_GENERIC
}

// WithCode attaches the matching exit code to a list error.
func WithCode(err error) error {
	if err == nil {
		return nil
	}
	return &ErrorWithCode{
		StatusCode:    CodeFor(err),
		InternalError: err,
	}
}
