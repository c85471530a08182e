package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payrollpro/internal/employee"
	"payrollpro/internal/payroll"

	payrollerrors "payrollpro/internal/payroll/errors"
	reporterrors "payrollpro/internal/report/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ReportTypeMonthly  = "monthly"
	ReportTypeEmployee = "employee"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Monthly(ctx context.Context, month string) (ReportResponse, error)
	EmployeeHistory(ctx context.Context, employeeID string) (ReportResponse, error)
	ExportCSV(ctx context.Context, reportType, month, employeeID string) ([]byte, string, error)
	Payslip(ctx context.Context, employeeID, month string) (string, error)
	Dashboard(ctx context.Context, month string) (DashboardResponse, error)
}

// service hanya membaca: agregasi murni di atas hasil query ledger.
type service struct {
	ledger    payroll.Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(ledger payroll.Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		ledger:    ledger,
		employees: employees,
		logger:    l,
	}
}

func (s *service) Monthly(ctx context.Context, month string) (ReportResponse, error) {
	if err := validateMonth(month); err != nil {
		return ReportResponse{}, err
	}

	records, err := s.ledger.FindByMonth(ctx, month)
	if err != nil {
		s.logger.Error("monthly report query failed", zap.Error(err))
		return ReportResponse{}, err
	}

	return buildReport(records), nil
}

func (s *service) EmployeeHistory(ctx context.Context, employeeID string) (ReportResponse, error) {
	records, err := s.ledger.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("employee history query failed", zap.Error(err))
		return ReportResponse{}, err
	}

	return buildReport(records), nil
}

func (s *service) ExportCSV(
	ctx context.Context,
	reportType, month, employeeID string,
) ([]byte, string, error) {
	var (
		records []payroll.PayrollRecord
		key     string
		err     error
	)

	switch reportType {
	case ReportTypeMonthly:
		if err := validateMonth(month); err != nil {
			return nil, "", err
		}
		records, err = s.ledger.FindByMonth(ctx, month)
		key = month
	case ReportTypeEmployee:
		records, err = s.ledger.FindByEmployee(ctx, employeeID)
		key = employeeID
	default:
		return nil, "", reporterrors.ErrInvalidReportType
	}
	if err != nil {
		s.logger.Error("export query failed", zap.Error(err))
		return nil, "", err
	}

	// Export ditolak sebelum file dibuat jika tidak ada baris.
	if len(records) == 0 {
		return nil, "", reporterrors.ErrEmptyExport
	}

	csv := RenderCSV(BuildExportRows(records))
	filename := fmt.Sprintf("payroll-report-%s-%s.csv", reportType, key)

	s.logger.Info("report exported",
		zap.String("type", reportType),
		zap.String("key", key),
		zap.Int("rows", len(records)),
	)

	return csv, filename, nil
}

func (s *service) Payslip(ctx context.Context, employeeID, month string) (string, error) {
	if err := validateMonth(month); err != nil {
		return "", err
	}

	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", reporterrors.ErrPayslipDataNotFound
		}
		return "", err
	}

	records, err := s.ledger.FindByEmployee(ctx, employeeID)
	if err != nil {
		return "", err
	}

	for _, record := range records {
		if record.Month == month {
			return RenderPayslipHTML(*empl, record), nil
		}
	}

	return "", reporterrors.ErrPayslipDataNotFound
}

func (s *service) Dashboard(ctx context.Context, month string) (DashboardResponse, error) {
	if err := validateMonth(month); err != nil {
		return DashboardResponse{}, err
	}

	empls, err := s.employees.FindAll(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	records, err := s.ledger.FindByMonth(ctx, month)
	if err != nil {
		return DashboardResponse{}, err
	}

	var totalNet float64
	for _, record := range records {
		totalNet += record.NetPay
	}

	average := 0.0
	if len(empls) > 0 {
		average = totalNet / float64(len(empls))
	}

	return DashboardResponse{
		TotalEmployees: len(empls),
		Month:          month,
		TotalNetPay:    totalNet,
		AverageNetPay:  average,
		ProcessedCount: len(records),
	}, nil
}

// buildReport menghitung summary sebagai penjumlahan aritmetika persis
// atas set record yang dikembalikan query.
func buildReport(records []payroll.PayrollRecord) ReportResponse {
	rows := make([]ReportRecord, len(records))
	summary := ReportSummary{Count: len(records)}

	for i, record := range records {
		rows[i] = ReportRecord{
			ID:              record.ID.String(),
			EmployeeID:      record.EmployeeID.String(),
			EmployeeName:    record.EmployeeName,
			Month:           record.Month,
			BasicSalary:     record.BasicSalary,
			OvertimeHours:   record.OvertimeHours,
			GrossPay:        record.GrossPay,
			TotalDeductions: record.TotalDeductions,
			NetPay:          record.NetPay,
		}
		summary.TotalGross += record.GrossPay
		summary.TotalNet += record.NetPay
	}

	return ReportResponse{Records: rows, Summary: summary}
}

func validateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return payrollerrors.ErrInvalidMonthFormat
	}
	return nil
}
