package payrollerrors

import (
	"net/http"

	"payrollpro/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrDuplicatePeriod = apperror.New(
		apperror.CodeConflict,
		"payroll already processed for this employee this month",
		http.StatusConflict,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
)
