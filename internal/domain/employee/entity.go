package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Can back-date attendance past the 24h cutoff
	RoleAdmin      Role = "admin"       // Marks attendance, manages directory data
	RoleEmployee   Role = "employee"    // Regular employee
)

func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleEmployee
}

// IsAdmin checks if the role carries admin privileges
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsSuperAdmin checks for the elevated privilege that gates >24h entries
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// Actor identifies the authenticated user performing an operation.
// Extracted from JWT claims at the handler boundary and passed down
// explicitly so services stay testable.
type Actor struct {
	ID        string
	DisplayID string
	Name      string
	Role      Role
}

type Employee struct {
	ID         string
	EmployeeID string // display ID, EMP_00001
	FirstName  string
	LastName   string
	Email      string
	Phone      *string

	PasswordHash string
	Role         Role
	JobRole      *string

	// Snapshot fields: department and shift names are denormalized at
	// assignment time and go stale by design.
	DepartmentRef  string
	DepartmentName string
	ShiftRef       *string
	ShiftName      *string

	MonthlySalary      decimal.Decimal
	HourlyRate         *decimal.Decimal
	OvertimeEligible   bool
	OvertimeMultiplier *decimal.Decimal
	OvertimeRate       *decimal.Decimal

	JoiningDate time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
