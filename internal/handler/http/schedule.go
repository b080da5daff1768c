package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/schedule"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	CreateWeekly(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
	GetEmployeeSchedule(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// CreateWeekly implements ScheduleHandler.
func (h *scheduleHandlerImpl) CreateWeekly(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateWeeklyScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.CreateWeekly(r.Context(), req, middleware.ActorFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Schedule created", resp)
}

// GetWeek implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	week := chi.URLParam(r, "week")

	var departmentRef *string
	if v := r.URL.Query().Get("department_id"); v != "" {
		departmentRef = &v
	}

	resp, err := h.scheduleService.GetWeek(r.Context(), week, departmentRef)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// GetEmployeeSchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	employeeRef := chi.URLParam(r, "employeeId")

	var week *string
	if v := r.URL.Query().Get("week"); v != "" {
		week = &v
	}

	assignments, err := h.scheduleService.GetEmployeeSchedule(r.Context(), employeeRef, week)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, assignments)
}

// DeleteAssignment implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteAssignment(r.Context(), chi.URLParam(r, "id"), middleware.ActorFromRequest(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment deleted", nil)
}
