package response

import (
	"errors"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/salary"
	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
	"github.com/workforcehq/workforce-backend-go/internal/domain/shift"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrRefreshTokenInvalid),
		errors.Is(err, auth.ErrRefreshTokenExpired):
		Unauthorized(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrEntryAlreadyMarked),
		errors.Is(err, attendance.ErrExitAlreadyMarked):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrBackdatedEntry):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrFutureDate),
		errors.Is(err, attendance.ErrBackdateNeedsReason),
		errors.Is(err, attendance.ErrNoEntryMarked),
		errors.Is(err, attendance.ErrExitBeforeEntry),
		errors.Is(err, attendance.ErrExitCrossMidnight),
		errors.Is(err, attendance.ErrDurationTooShort),
		errors.Is(err, attendance.ErrDurationTooLong),
		errors.Is(err, attendance.ErrCorrectionOfToday),
		errors.Is(err, attendance.ErrCorrectionTooOld):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeInactive),
		errors.Is(err, employee.ErrAlreadyDeactivated),
		errors.Is(err, employee.ErrNoDepartment):
		BadRequest(w, err.Error(), nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, department.ErrNameExists),
		errors.Is(err, department.ErrHasActiveEmployees):
		Conflict(w, err.Error())
	case errors.Is(err, department.ErrDepartmentInactive):
		BadRequest(w, err.Error(), nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, shift.ErrDepartmentNoShifts),
		errors.Is(err, shift.ErrZeroLengthShift),
		errors.Is(err, shift.ErrShiftDepartmentMismatch):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, schedule.ErrDuplicateAssignment):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrNoShiftsInDepartment),
		errors.Is(err, schedule.ErrDepartmentBoundary),
		errors.Is(err, schedule.ErrDateOutsideWeek):
		BadRequest(w, err.Error(), nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrNoSalaryConfigured),
		errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
