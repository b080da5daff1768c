package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workforcehq/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	salaryHandler SalaryHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	shiftHandler ShiftHandler,
	scheduleHandler ScheduleHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Post("/auth/logout-all", authHandler.LogoutAll)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/past-week/{employeeId}", attendanceHandler.PastWeek)
				r.Get("/summary/{employeeId}", attendanceHandler.MonthlySummary)

				// Admin only; backdated entries additionally require
				// super admin, checked in the service
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/entry", attendanceHandler.MarkEntry)
					r.Post("/exit", attendanceHandler.MarkExit)
					r.Put("/{id}/correct", attendanceHandler.Correct)
					r.Get("/", attendanceHandler.List)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/{employeeId}", salaryHandler.Calculate)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/department/{departmentId}", salaryHandler.DepartmentReport)
					r.Get("/report", salaryHandler.SystemReport)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
					r.Post("/{id}/transfer", employeeHandler.Transfer)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)
				r.Get("/{id}", departmentHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", departmentHandler.Create)
					r.Put("/{id}", departmentHandler.Update)
					r.Delete("/{id}", departmentHandler.Deactivate)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/{id}", shiftHandler.Get)
				r.Get("/department/{departmentId}", shiftHandler.ListByDepartment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", shiftHandler.Create)
					r.Put("/{id}", shiftHandler.Update)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/week/{week}", scheduleHandler.GetWeek)
				r.Get("/employee/{employeeId}", scheduleHandler.GetEmployeeSchedule)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", scheduleHandler.CreateWeekly)
					r.Delete("/{id}", scheduleHandler.DeleteAssignment)
				})
			})
		})
	})

	return r
}
