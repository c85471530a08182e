package payroll

import (
	"errors"

	payrollerrors "payrollpro/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505: unique_violation — backstop untuk race antara HasPeriod dan insert
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_employee_month" {
			return payrollerrors.ErrDuplicatePeriod
		}
	}

	return err
}
