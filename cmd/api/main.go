package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hriscore/payroll-engine-go/internal/config"
	appHTTP "github.com/hriscore/payroll-engine-go/internal/handler/http"
	"github.com/hriscore/payroll-engine-go/internal/pkg/database"
	"github.com/hriscore/payroll-engine-go/internal/pkg/jwt"
	"github.com/hriscore/payroll-engine-go/internal/repository/postgresql"
	paycomponentService "github.com/hriscore/payroll-engine-go/internal/service/paycomponent"
	payslipService "github.com/hriscore/payroll-engine-go/internal/service/payslip"
	taxService "github.com/hriscore/payroll-engine-go/internal/service/tax"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(context.Background(), dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payroll-engine"),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)
	taxRepo := postgresql.NewTaxRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	payslipSvc := payslipService.NewPayslipService(
		db,
		employeeRepo,
		contractRepo,
		attendanceRepo,
		leaveRepo,
		calendarRepo,
		catalogRepo,
		taxRepo,
		payslipRepo,
		logger,
		cfg.Payroll.BatchWorkers,
	)
	catalogSvc := paycomponentService.NewCatalogService(catalogRepo, logger)
	taxSvc := taxService.NewTaxService(taxRepo, logger)

	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	payComponentHandler := appHTTP.NewPayComponentHandler(catalogSvc)
	taxHandler := appHTTP.NewTaxHandler(taxSvc)

	router := appHTTP.NewRouter(
		JWTService,
		payslipHandler,
		payComponentHandler,
		taxHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
