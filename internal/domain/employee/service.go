package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest, actor Actor) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest, actor Actor) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string, actor Actor) error
	Transfer(ctx context.Context, id string, req TransferRequest, actor Actor) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
}
