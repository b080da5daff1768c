package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeInactive   = errors.New("employee is inactive")
	ErrEmailExists        = errors.New("email already registered")
	ErrNoDepartment       = errors.New("employee has no department assigned")
	ErrAlreadyDeactivated = errors.New("employee is already deactivated")
)
