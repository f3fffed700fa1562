package errors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid directory request")
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrForbidden          = errors.New("forbidden")
)
