package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/config"
	appHTTP "github.com/workforcehq/workforce-backend-go/internal/handler/http"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cron"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/idgen"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforcehq/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workforcehq/workforce-backend-go/internal/service/attendance"
	auditService "github.com/workforcehq/workforce-backend-go/internal/service/audit"
	authService "github.com/workforcehq/workforce-backend-go/internal/service/auth"
	departmentService "github.com/workforcehq/workforce-backend-go/internal/service/department"
	employeeService "github.com/workforcehq/workforce-backend-go/internal/service/employee"
	historyService "github.com/workforcehq/workforce-backend-go/internal/service/history"
	salaryService "github.com/workforcehq/workforce-backend-go/internal/service/salary"
	scheduleService "github.com/workforcehq/workforce-backend-go/internal/service/schedule"
	shiftService "github.com/workforcehq/workforce-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	historyRepo := postgresql.NewHistoryRepository(db)
	counterStore := postgresql.NewCounterStore(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	refreshExpiry, err := time.ParseDuration(cfg.JWT.RefreshExpiration)
	if err != nil {
		log.Fatal("Invalid JWT_REFRESH_EXPIRATION_TIME: ", err)
	}

	auditor := auditService.NewAuditSink(auditRepo, logger)
	historian := historyService.NewHistorySink(historyRepo, logger)

	employeeIDs := idgen.NewSequential(counterStore, "employee", "EMP_", 5)
	departmentIDs := idgen.NewSequential(counterStore, "department", "DEPT_", 4)
	shiftIDs := idgen.NewSequential(counterStore, "shift", "SHF_", 4)
	scheduleIDs := idgen.NewSequential(counterStore, "schedule", "SCH_", 6)
	attendanceIDs := idgen.NewRandom("ATT_", 6, attendanceRepo.DisplayIDExists)

	authSvc := authService.NewAuthService(refreshTokenRepo, employeeRepo, JWTService, refreshExpiry, auditor, logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, shiftRepo, employeeIDs, auditor, historian)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, employeeRepo, departmentIDs, auditor)
	shiftSvc := shiftService.NewShiftService(shiftRepo, departmentRepo, shiftIDs, auditor)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo, departmentRepo, shiftRepo, scheduleIDs, auditor)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		departmentRepo,
		shiftRepo,
		attendanceIDs,
		auditor,
		historian,
		logger,
	)
	salarySvc := salaryService.NewSalaryService(employeeRepo, departmentRepo, attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		salaryHandler,
		employeeHandler,
		departmentHandler,
		shiftHandler,
		scheduleHandler,
	)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("refresh-token-cleanup", cfg.Cron.TokenCleanupInterval, authSvc.CleanupExpiredTokens)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
}
