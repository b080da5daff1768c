package department

import "time"

type Department struct {
	ID           string
	DepartmentID string // display ID, DEPT20250610001
	Name         string
	Description  *string
	HasShifts    bool
	IsActive     bool
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
