package shift

import "time"

// DefaultStandardHours applies when an employee has no shift bound.
const DefaultStandardHours = 8.0

type Shift struct {
	ID             string
	ShiftID        string // display ID, SHIFT20250610001
	Name           string
	DepartmentRef  string
	DepartmentName string
	StartTime      string // "HH:MM"
	EndTime        string // "HH:MM"

	// StandardHours is the regular-hours threshold; worked time beyond it
	// counts as overtime. Computed from start/end with wraparound: an end
	// at or before the start means the shift runs into the next day.
	StandardHours float64
	IsOvernight   bool

	IsActive  bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
