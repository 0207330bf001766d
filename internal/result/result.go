// Package result defines the uniform success/failure envelope every use case
// returns.
package result

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
)

// Kind classifies a failure.
type Kind string

const (
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindNotFound     Kind = "NOT_FOUND"
	KindValidation   Kind = "VALIDATION"
	KindFailure      Kind = "FAILURE"
)

// GenericFailureMessage is the only message exposed for unexpected errors.
const GenericFailureMessage = "an unexpected error occurred"

// Error is the failure half of a Result.
type Error struct {
	Kind    Kind                `json:"kind"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Code, e.Message)
}

// Result holds either a value or an Error, never both.
type Result[T any] struct {
	value T
	err   *Error
}

// Success wraps v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure builds a failed result.
func Failure[T any](kind Kind, code, message string) Result[T] {
	return Result[T]{err: &Error{Kind: kind, Code: code, Message: message}}
}

// Fail wraps an existing Error.
func Fail[T any](e *Error) Result[T] {
	return Result[T]{err: e}
}

func (r Result[T]) IsSuccess() bool { return r.err == nil }

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Error returns the failure, or nil on success.
func (r Result[T]) Error() *Error { return r.err }

// FromError maps a domain or infrastructure error onto the envelope.
// Unexpected errors are logged with full detail and reported with a generic
// message only.
func FromError(ctx context.Context, log *slog.Logger, err error) *Error {
	var nf *domain.NotFoundError
	var ve *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return &Error{Kind: KindUnauthorized, Code: "unauthorized", Message: "authentication required"}

	case errors.As(err, &nf):
		return &Error{
			Kind:    KindNotFound,
			Code:    strings.ToLower(nf.Entity.String()) + ".not_found",
			Message: fmt.Sprintf("%s not found", strings.ToLower(strings.ReplaceAll(nf.Entity.String(), "_", " "))),
		}

	case errors.Is(err, domain.ErrNotFound):
		return &Error{Kind: KindNotFound, Code: "not_found", Message: "resource not found"}

	case errors.As(err, &ve):
		e := &Error{Kind: KindValidation, Code: "validation", Message: ve.Error(), Fields: ve.Errors}
		if f := ve.Field(); f != "" {
			e.Code = "validation." + f
			e.Message = ve.Errors[0].Message
		}
		return e

	case errors.Is(err, domain.ErrValidation):
		return &Error{Kind: KindValidation, Code: "validation", Message: "invalid input"}

	default:
		log.ErrorContext(ctx, "unexpected error", slog.String("error", err.Error()))
		return &Error{Kind: KindFailure, Code: "internal", Message: GenericFailureMessage}
	}
}

// From converts a (value, error) pair into a Result.
func From[T any](ctx context.Context, log *slog.Logger, v T, err error) Result[T] {
	if err != nil {
		return Fail[T](FromError(ctx, log, err))
	}
	return Success(v)
}
