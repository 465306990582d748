package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidPosition  = errors.New("position must be Manager, Supervisor or Staff")
	ErrUnauthorized     = errors.New("unauthorized to access this employee")
)
