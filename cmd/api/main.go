package main

import (
	"fmt"
	"net/http"

	"github.com/tapatrack/tapatrack-backend-go/internal/config"
	appHTTP "github.com/tapatrack/tapatrack-backend-go/internal/handler/http"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/database"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/jwt"
	"github.com/tapatrack/tapatrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tapatrack/tapatrack-backend-go/internal/service/attendance"
	authService "github.com/tapatrack/tapatrack-backend-go/internal/service/auth"
	credentialService "github.com/tapatrack/tapatrack-backend-go/internal/service/credential"
	employeeService "github.com/tapatrack/tapatrack-backend-go/internal/service/employee"
	exportService "github.com/tapatrack/tapatrack-backend-go/internal/service/export"
	payrollService "github.com/tapatrack/tapatrack-backend-go/internal/service/payroll"
	policyService "github.com/tapatrack/tapatrack-backend-go/internal/service/policy"
	reportService "github.com/tapatrack/tapatrack-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	credentialRepo := postgresql.NewCredentialRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	timeEventRepo := postgresql.NewTimeEventRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(adminRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, credentialRepo)
	credentialSvc := credentialService.NewCredentialService(credentialRepo)
	policySvc := policyService.NewTimePolicyService(policyRepo)
	attendanceSvc := attendanceService.NewAttendanceService(timeEventRepo, credentialRepo, employeeRepo, policyRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, timeEventRepo, employeeRepo)
	reportSvc := reportService.NewReportService(timeEventRepo, employeeRepo)
	exportSvc := exportService.NewExportService()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	credentialHandler := appHTTP.NewCredentialHandler(credentialSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, exportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		employeeHandler,
		credentialHandler,
		policyHandler,
		attendanceHandler,
		payrollHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
