package attendance

import (
	"context"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
)

type AttendanceService interface {
	MarkEntry(ctx context.Context, req MarkEntryRequest, actor employee.Actor) (AttendanceResponse, error)
	MarkExit(ctx context.Context, req MarkExitRequest, actor employee.Actor) (AttendanceResponse, error)
	Correct(ctx context.Context, recordID string, req CorrectionRequest, actor employee.Actor) (AttendanceResponse, error)

	List(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
	PastWeek(ctx context.Context, employeeRef string) ([]AttendanceResponse, error)
	MonthlySummary(ctx context.Context, employeeRef string, year int, month int) (SummaryResponse, error)
}
