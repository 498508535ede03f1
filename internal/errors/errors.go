package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError covers local, pre-submission failures. Details carry one
// entry per failed field in validator-table order.
type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Message string
	Cause   error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

func NewNetworkError(message string, cause error) *NetworkError {
	return &NetworkError{
		Message: message,
		Cause:   cause,
	}
}

func IsNetworkError(err error) (*NetworkError, bool) {
	if ne, ok := err.(*NetworkError); ok {
		return ne, true
	}
	return nil, false
}

// ConflictError is an HTTP 409, a duplicate jersey number or name.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	if ce, ok := err.(*ConflictError); ok {
		return ce, true
	}
	return nil, false
}

// RateLimitError is an HTTP 429.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

func NewRateLimitError(message string) *RateLimitError {
	return &RateLimitError{Message: message}
}

func IsRateLimitError(err error) (*RateLimitError, bool) {
	if re, ok := err.(*RateLimitError); ok {
		return re, true
	}
	return nil, false
}

// ServerError is any HTTP 5xx.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

func NewServerError(status int, message string) *ServerError {
	return &ServerError{
		Status:  status,
		Message: message,
	}
}

func IsServerError(err error) (*ServerError, bool) {
	if se, ok := err.(*ServerError); ok {
		return se, true
	}
	return nil, false
}

// BadRequestError is an HTTP 400 the backend rejected.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func IsBadRequestError(err error) (*BadRequestError, bool) {
	if be, ok := err.(*BadRequestError); ok {
		return be, true
	}
	return nil, false
}

// NotFoundError is an HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if ne, ok := err.(*NotFoundError); ok {
		return ne, true
	}
	return nil, false
}

// UnknownRequestError is any other HTTP failure that still carried a message.
type UnknownRequestError struct {
	Status  int
	Message string
}

func (e *UnknownRequestError) Error() string {
	return e.Message
}

func NewUnknownRequestError(status int, message string) *UnknownRequestError {
	return &UnknownRequestError{
		Status:  status,
		Message: message,
	}
}

func IsUnknownRequestError(err error) (*UnknownRequestError, bool) {
	if ue, ok := err.(*UnknownRequestError); ok {
		return ue, true
	}
	return nil, false
}
