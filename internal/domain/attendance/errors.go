package attendance

import "errors"

// Attendance domain errors
var (
	// Entry errors
	ErrFutureDate          = errors.New("cannot mark attendance for future dates")
	ErrEntryAlreadyMarked  = errors.New("entry already marked for this date")
	ErrBackdatedEntry      = errors.New("cannot mark attendance older than 24 hours, contact a super admin for corrections")
	ErrBackdateNeedsReason = errors.New("a correction reason is required for attendance older than 24 hours")

	// Exit errors
	ErrNoEntryMarked     = errors.New("no check-in found for this date, mark entry first")
	ErrExitAlreadyMarked = errors.New("check-out already marked for this date")
	ErrExitBeforeEntry   = errors.New("check-out time must be after check-in time")
	ErrExitCrossMidnight = errors.New("check-in and check-out must be on the same day")
	ErrDurationTooShort  = errors.New("work duration less than 30 minutes, please verify times")
	ErrDurationTooLong   = errors.New("work duration exceeds 24 hours, please verify times")

	// Correction errors
	ErrCorrectionOfToday = errors.New("cannot correct today's attendance, use mark entry/exit instead")
	ErrCorrectionTooOld  = errors.New("can only correct attendance from the past 7 days")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
