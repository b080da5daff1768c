package shift

import "errors"

var (
	ErrShiftNotFound           = errors.New("shift not found")
	ErrDepartmentNoShifts      = errors.New("this department does not use shifts")
	ErrZeroLengthShift         = errors.New("shift start and end times must differ")
	ErrShiftDepartmentMismatch = errors.New("shift belongs to a different department")
)
