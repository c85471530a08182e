package app

import (
	"database/sql"

	"payrollpro/internal/employee"
	"payrollpro/internal/messaging/kafka"
	"payrollpro/internal/middleware"
	"payrollpro/internal/payroll"
	"payrollpro/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo, "")
	reportService := report.NewService(payrollRepo, employeeRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		payroll.RegisterRoutes(api, payrollHandler, rdb, logger)
		report.RegisterRoutes(api, reportHandler, logger)
	}

	return nil
}
