package payroll

import (
	"payrollpro/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.ContextLogger(logger))
	{
		payrolls.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		payrolls.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		payrolls.POST("/preview",
			middleware.RateLimitByUser(5, 20),
			handler.Preview,
		)

		payrolls.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Commit,
		)

		payrolls.POST("/:id/payslip",
			middleware.RateLimitByUser(0.5, 2),
			handler.RequestPayslip,
		)

		payrolls.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
	}
}
