package report

import (
	"fmt"
	"net/http"

	"payrollpro/internal/shared/apperror"
	"payrollpro/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Monthly(c *gin.Context) {
	month := c.Query("month")
	h.logger.Debug("http monthly report", zap.String("month", month))

	resp, err := h.service.Monthly(c.Request.Context(), month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) EmployeeHistory(c *gin.Context) {
	employeeID := c.Param("id")
	h.logger.Debug("http employee history report", zap.String("employee_id", employeeID))

	resp, err := h.service.EmployeeHistory(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	reportType := c.Query("type")
	month := c.Query("month")
	employeeID := c.Query("employee_id")
	h.logger.Debug("http export report",
		zap.String("type", reportType),
		zap.String("month", month),
		zap.String("employee_id", employeeID),
	)

	csv, filename, err := h.service.ExportCSV(c.Request.Context(), reportType, month, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}

func (h *Handler) Payslip(c *gin.Context) {
	employeeID := c.Query("employee_id")
	month := c.Query("month")
	h.logger.Debug("http payslip",
		zap.String("employee_id", employeeID),
		zap.String("month", month),
	)

	html, err := h.service.Payslip(c.Request.Context(), employeeID, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) Dashboard(c *gin.Context) {
	month := c.Query("month")
	h.logger.Debug("http dashboard", zap.String("month", month))

	resp, err := h.service.Dashboard(c.Request.Context(), month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
