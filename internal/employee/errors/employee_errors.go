package employeeerrors

import (
	"net/http"
	"payrollpro/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Name, ID number and basic salary are required",
		http.StatusBadRequest,
	)
	ErrInvalidBasicSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Basic salary must be a non-negative number",
		http.StatusBadRequest,
	)
)
