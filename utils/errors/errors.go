package errors

import (
	"fmt"

	"github.com/campuscloset/marketplace/constant"
)

type CustomError struct {
	errType constant.ErrorType
	detail  string
	fields  []string
	// retryAfter carries the hint for rate-limited responses, in seconds.
	retryAfter int
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return fmt.Sprintf("%s: %s", constant.ErrorTypeMessage[c.errType], c.detail)
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Fields lists the violated request fields for validation failures.
func (c CustomError) Fields() []string {
	return c.fields
}

// RetryAfter returns the retry hint in seconds, 0 when not rate limited.
func (c CustomError) RetryAfter() int {
	return c.retryAfter
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithDetail attaches a human-readable detail, e.g. the
// attempted and current states of an illegal transition.
func SetCustomErrorWithDetail(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

// SetValidationError enumerates every violated field of a request payload.
func SetValidationError(fields []string) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}

// SetRateLimitedError carries the retry-after hint in seconds.
func SetRateLimitedError(retryAfter int) CustomError {
	return CustomError{
		errType:    constant.ErrRateLimited,
		retryAfter: retryAfter,
	}
}

// SetInvalidTransitionError names both states for operator clarity.
func SetInvalidTransitionError(from, to string) CustomError {
	return CustomError{
		errType: constant.ErrInvalidTransition,
		detail:  fmt.Sprintf("cannot move from %s to %s", from, to),
	}
}

// TypeOf extracts the ErrorType of a CustomError, ErrInternal otherwise.
func TypeOf(err error) constant.ErrorType {
	if ce, ok := err.(CustomError); ok {
		return ce.ErrorType()
	}
	return constant.ErrInternal
}
