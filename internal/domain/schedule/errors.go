package schedule

import "errors"

var (
	ErrNoShiftsInDepartment = errors.New("department has no shifts defined, create shifts before scheduling")
	ErrDepartmentBoundary   = errors.New("employee and shift belong to different departments")
	ErrAssignmentNotFound   = errors.New("schedule assignment not found")
	ErrDateOutsideWeek      = errors.New("assignment date falls outside the schedule week")
	ErrDuplicateAssignment  = errors.New("employee already has an assignment for this date")
)
