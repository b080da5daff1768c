package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	MarkEntry(w http.ResponseWriter, r *http.Request)
	MarkExit(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	PastWeek(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// MarkEntry implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkEntry(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.MarkEntry(r.Context(), req, middleware.ActorFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Entry marked", resp)
}

// MarkExit implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkExit(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkExitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.MarkExit(r.Context(), req, middleware.ActorFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Exit marked", resp)
}

// Correct implements AttendanceHandler.
func (h *attendanceHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.CorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.Correct(r.Context(), id, req, middleware.ActorFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance corrected", resp)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := attendance.Filter{}
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeRef = &v
	}
	if v := query.Get("department_id"); v != "" {
		filter.DepartmentRef = &v
	}
	if v := query.Get("date"); v != "" {
		filter.Date = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := query.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := query.Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// PastWeek implements AttendanceHandler.
func (h *attendanceHandlerImpl) PastWeek(w http.ResponseWriter, r *http.Request) {
	employeeRef := chi.URLParam(r, "employeeId")

	records, err := h.attendanceService.PastWeek(r.Context(), employeeRef)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// MonthlySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeRef := chi.URLParam(r, "employeeId")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	summary, err := h.attendanceService.MonthlySummary(r.Context(), employeeRef, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
