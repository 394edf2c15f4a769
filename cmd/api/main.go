package main

import (
	"fmt"
	"net/http"

	"github.com/shiftwise-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/shiftwise-hr/attendance-backend-go/internal/handler/http"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/cron"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftwise-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwise-hr/attendance-backend-go/internal/service/attendance"
	payrollService "github.com/shiftwise-hr/attendance-backend-go/internal/service/payroll"
	reconcileService "github.com/shiftwise-hr/attendance-backend-go/internal/service/reconcile"
	shiftplanService "github.com/shiftwise-hr/attendance-backend-go/internal/service/shiftplan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftPlanRepo := postgresql.NewShiftPlanRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	reconciler := reconcileService.NewReconcilerService(db, attendanceRepo, employeeRepo, shiftPlanRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, shiftPlanRepo, reconciler)
	shiftPlanSvc := shiftplanService.NewShiftPlanService(db, shiftPlanRepo)
	payrollSvc := payrollService.NewPayrollService(db, attendanceRepo, employeeRepo, shiftPlanRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftPlanHandler := appHTTP.NewShiftPlanHandler(shiftPlanSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	reconcileJobs := cron.NewReconcileJobs(employeeRepo, reconciler)
	reconcileJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		shiftPlanHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
