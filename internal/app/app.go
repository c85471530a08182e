package app

import (
	"log"
	"os"

	"payrollpro/internal/employee"
	"payrollpro/internal/payroll"
	"payrollpro/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	log.Println("✅ Database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	// Skema kecil, auto migrate cukup. Unique index idx_employee_month
	// ikut terbentuk dari tag di entity.
	if err := gormDB.AutoMigrate(&employee.Employee{}, &payroll.PayrollRecord{}); err != nil {
		return err
	}
	log.Println("✅ Schema migrated")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	// Register Modules & Routes
	return registerModules(router, sqlDB, gormDB, redisClient)
}
