package domain

import "errors"

// ErrorCode is the stable machine-readable code carried in error
// envelopes.
type ErrorCode string

const (
	CodeInvalidInput   ErrorCode = "invalid_input"
	CodeAuthentication ErrorCode = "authentication_error"
	CodeNoUser         ErrorCode = "no_user"
	CodeInternal       ErrorCode = "internal_error"
)

// Error is a business error with a stable code. Handlers convert these
// to error envelopes; anything else surfaces as internal_error.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

var (
	// ErrInvalidInput signals a missing or malformed required field.
	ErrInvalidInput = &Error{Code: CodeInvalidInput, Message: "required parameter is missing"}
	// ErrAuthentication signals bad credentials.
	ErrAuthentication = &Error{Code: CodeAuthentication, Message: "username or password is incorrect"}
	// ErrNoUser signals an action that requires login from an anonymous viewer.
	ErrNoUser = &Error{Code: CodeNoUser, Message: "login required"}
)

// AsError unwraps err into a business *Error if it carries one.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
