package employee

import (
	"context"
)

// EmployeeRepository defines data access for employees. The attendance
// engine consumes it as a read-only directory lookup; employee management
// uses the full surface.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	Update(ctx context.Context, emp Employee) error

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// ListActiveByDepartment feeds department-wide salary reports
	ListActiveByDepartment(ctx context.Context, departmentRef string) ([]Employee, error)

	EmailExists(ctx context.Context, email string) (bool, error)
	CountActiveByDepartment(ctx context.Context, departmentRef string) (int, error)
}
