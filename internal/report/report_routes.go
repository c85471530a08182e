package report

import (
	"payrollpro/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("/monthly",
			middleware.RateLimitByUser(3, 10),
			handler.Monthly,
		)

		reports.GET("/employees/:id",
			middleware.RateLimitByUser(3, 10),
			handler.EmployeeHistory,
		)

		reports.GET("/export",
			middleware.RateLimitByUser(0.5, 2), // Export relatif berat
			handler.Export,
		)

		reports.GET("/payslip",
			middleware.RateLimitByUser(1, 5),
			handler.Payslip,
		)

		reports.GET("/dashboard",
			middleware.RateLimitByUser(3, 10),
			handler.Dashboard,
		)
	}
}
