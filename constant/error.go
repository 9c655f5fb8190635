package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPassword
	ErrForbidden
	ErrLocationLocked
	ErrAssignmentConflict
	ErrDuplicateAssignment
	ErrInvalidMode
	ErrLeaseNotHeld
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrInvalidPassword:     "password invalid",
	ErrForbidden:           "permission denied",
	ErrLocationLocked:      "location is in use by another session",
	ErrAssignmentConflict:  "assignment conflicts with current location state",
	ErrDuplicateAssignment: "product already assigned to this location",
	ErrInvalidMode:         "invalid assignment mode",
	ErrLeaseNotHeld:        "location lease not held by this session",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrForbidden:           http.StatusForbidden,
	ErrLocationLocked:      http.StatusLocked,
	ErrAssignmentConflict:  http.StatusConflict,
	ErrDuplicateAssignment: http.StatusConflict,
	ErrInvalidMode:         http.StatusBadRequest,
	ErrLeaseNotHeld:        http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrInvalidPassword:     "0006",
	ErrForbidden:           "0007",
	ErrLocationLocked:      "1001",
	ErrAssignmentConflict:  "1002",
	ErrDuplicateAssignment: "1003",
	ErrInvalidMode:         "1004",
	ErrLeaseNotHeld:        "1005",
}
