package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/item-location/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Is reports whether err carries the given error type anywhere in its chain.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.errType == errorType
	}
	return false
}

// As returns the CustomError carried by err, if any.
func As(err error) (CustomError, bool) {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return CustomError{}, false
}
