package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/salary"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	DepartmentReport(w http.ResponseWriter, r *http.Request)
	SystemReport(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

func periodFromQuery(r *http.Request) (year, month int) {
	year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	return year, month
}

// Calculate implements SalaryHandler.
func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	employeeRef := chi.URLParam(r, "employeeId")
	year, month := periodFromQuery(r)

	projection, err := h.salaryService.Calculate(r.Context(), employeeRef, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, projection)
}

// DepartmentReport implements SalaryHandler.
func (h *salaryHandlerImpl) DepartmentReport(w http.ResponseWriter, r *http.Request) {
	departmentRef := chi.URLParam(r, "departmentId")
	year, month := periodFromQuery(r)

	report, err := h.salaryService.DepartmentReport(r.Context(), departmentRef, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// SystemReport implements SalaryHandler.
func (h *salaryHandlerImpl) SystemReport(w http.ResponseWriter, r *http.Request) {
	year, month := periodFromQuery(r)

	report, err := h.salaryService.SystemReport(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}
