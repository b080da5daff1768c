package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentInactive = errors.New("department is inactive")
	ErrNameExists         = errors.New("department name already exists")
	ErrHasActiveEmployees = errors.New("department still has active employees")
)
