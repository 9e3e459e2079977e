package types

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	Forbidden            ErrorCode = "FORBIDDEN"
	NotFound             ErrorCode = "NOT_FOUND"
	UnprocessableEntity  ErrorCode = "UNPROCESSABLE_ENTITY"
	BadGateway           ErrorCode = "BAD_GATEWAY"
)

// Error carries the http status the api layer should answer with.
type Error struct {
	StatusCode int
	ErrorCode  ErrorCode
	Err        error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

// AsError converts any error into *Error, unknown errors become internal service errors.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var typedErr *Error
	if errors.As(err, &typedErr) {
		return typedErr
	}

	return NewInternalServiceError(fmt.Errorf("unexpected error: %w", err))
}
