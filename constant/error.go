package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrRateLimited
	ErrInsufficientStock
	ErrInvalidTransition
	ErrPreconditionFailed
	ErrCredentialExists
	ErrInvalidPassword
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrForbidden:          "forbidden request",
	ErrRateLimited:        "too many requests",
	ErrInsufficientStock:  "insufficient stock",
	ErrInvalidTransition:  "illegal status transition",
	ErrPreconditionFailed: "operation not allowed in current state",
	ErrCredentialExists:   "email or phone already exists",
	ErrInvalidPassword:    "password invalid",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrRateLimited:        http.StatusTooManyRequests,
	ErrInsufficientStock:  http.StatusBadRequest,
	ErrInvalidTransition:  http.StatusConflict,
	ErrPreconditionFailed: http.StatusConflict,
	ErrCredentialExists:   http.StatusBadRequest,
	ErrInvalidPassword:    http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrForbidden:          "0005",
	ErrRateLimited:        "0006",
	ErrInsufficientStock:  "0007",
	ErrInvalidTransition:  "0008",
	ErrPreconditionFailed: "0009",
	ErrCredentialExists:   "0010",
	ErrInvalidPassword:    "0011",
}
