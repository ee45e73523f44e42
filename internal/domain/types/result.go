package types

import (
	"errors"
	"fmt"
)

// Status tags the active variant of a Result.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Result is the outcome of an asynchronous operation: exactly one of
// Success(Value), Error(Message, Code) or Loading.
type Result[T any] struct {
	Status  Status
	Value   T
	Message string
	Code    ErrorCode
}

// Success wraps a value.
func Success[T any](v T) Result[T] {
	return Result[T]{Status: StatusSuccess, Value: v}
}

// Failure builds an error result. An empty code becomes CodeUnknown.
func Failure[T any](code ErrorCode, message string) Result[T] {
	if code == "" {
		code = CodeUnknown
	}
	return Result[T]{Status: StatusError, Message: message, Code: code}
}

// Loading marks an operation still in progress.
func Loading[T any]() Result[T] {
	return Result[T]{Status: StatusLoading}
}

func (r Result[T]) IsSuccess() bool { return r.Status == StatusSuccess }
func (r Result[T]) IsError() bool   { return r.Status == StatusError }
func (r Result[T]) IsLoading() bool { return r.Status == StatusLoading }

// Unwrap converts the result to the usual (value, error) pair. A Loading
// result yields ErrStillLoading.
func (r Result[T]) Unwrap() (T, error) {
	switch r.Status {
	case StatusSuccess:
		return r.Value, nil
	case StatusError:
		var zero T
		return zero, &OperationError{Code: r.Code, Message: r.Message}
	}
	var zero T
	return zero, ErrStillLoading
}

// OperationError is the error form of a failed Result.
type OperationError struct {
	Code    ErrorCode
	Message string
}

func (e *OperationError) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Message
}

// ErrStillLoading is returned by Unwrap on a Loading result.
var ErrStillLoading = errors.New("operation still in progress")
