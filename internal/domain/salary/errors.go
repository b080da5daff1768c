package salary

import "errors"

var (
	ErrNoSalaryConfigured = errors.New("employee has no monthly salary configured")
	ErrInvalidPeriod      = errors.New("invalid year or month for salary period")
)
