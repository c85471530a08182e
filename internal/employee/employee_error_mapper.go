package employee

import (
	"errors"

	employeeerrors "payrollpro/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"payrollpro/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 22P02: invalid_text_representation (id bukan uuid yang valid)
		if pgErr.Code == "22P02" {
			return employeeerrors.ErrInvalidEmployeeID
		}
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return err
}
