package reporterrors

import (
	"net/http"

	"payrollpro/internal/shared/apperror"
)

var (
	ErrEmptyExport = apperror.New(
		apperror.CodeInvalidState,
		"No data to export",
		http.StatusBadRequest,
	)
	ErrInvalidReportType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid report type, expected monthly or employee",
		http.StatusBadRequest,
	)
	ErrPayslipDataNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll data not found",
		http.StatusNotFound,
	)
)
