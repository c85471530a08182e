package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"payrollpro/internal/events"
	"payrollpro/internal/messaging/kafka"
	"payrollpro/internal/shared/contextutil"

	payrollerrors "payrollpro/internal/payroll/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, req ProcessPayrollRequest) (BreakdownResponse, error)
	Commit(ctx context.Context, req ProcessPayrollRequest) (PayrollRecordResponse, error)
	GetAll(ctx context.Context) ([]PayrollRecordResponse, error)
	GetByID(ctx context.Context, id string) (PayrollRecordResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]PayrollRecordResponse, error)
	GetByMonth(ctx context.Context, month string) ([]PayrollRecordResponse, error)
	Delete(ctx context.Context, id string) error
	RequestPayslip(ctx context.Context, id string) error
	GeneratePayslip(ctx context.Context, id string) (string, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outbox     kafka.OutboxRepository
	payslipDir string
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, "", logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	payslipDir string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if payslipDir == "" {
		payslipDir = os.TempDir()
	}
	return &service{
		db:         db,
		repo:       repo,
		outbox:     outboxRepo,
		payslipDir: payslipDir,
		logger:     l,
	}
}

// Preview menjalankan kalkulator tanpa side effect apapun.
func (s *service) Preview(
	ctx context.Context,
	req ProcessPayrollRequest,
) (BreakdownResponse, error) {
	if err := validateMonth(req.Month); err != nil {
		return BreakdownResponse{}, err
	}

	empl, err := s.findEmployee(ctx, s.repo, req.EmployeeID)
	if err != nil {
		return BreakdownResponse{}, err
	}

	breakdown := Calculate(empl, req.periodInput())
	if breakdown == nil {
		return BreakdownResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	return mapToBreakdownResponse(empl, req.Month, breakdown), nil
}

func (s *service) Commit(
	ctx context.Context,
	req ProcessPayrollRequest,
) (PayrollRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("commit payroll requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("month", req.Month),
	)

	if err := validateMonth(req.Month); err != nil {
		return PayrollRecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("commit payroll begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := s.findEmployee(ctx, qtx, req.EmployeeID)
	if err != nil {
		return PayrollRecordResponse{}, err
	}

	exists, err := qtx.HasPeriod(ctx, req.EmployeeID, req.Month)
	if err != nil {
		return PayrollRecordResponse{}, err
	}
	if exists {
		s.logger.Warn("commit payroll duplicate period",
			zap.String("employee_id", req.EmployeeID),
			zap.String("month", req.Month),
		)
		return PayrollRecordResponse{}, payrollerrors.ErrDuplicatePeriod
	}

	breakdown := Calculate(empl, req.periodInput())

	record := &PayrollRecord{
		ID:              uuid.New(),
		EmployeeID:      empl.ID,
		EmployeeName:    empl.Name,
		Month:           req.Month,
		BasicSalary:     breakdown.BasicSalary,
		OvertimeHours:   breakdown.OvertimeHours,
		OvertimeRate:    breakdown.OvertimeRate,
		Bonuses:         breakdown.Bonuses,
		NHIFDeduction:   breakdown.NHIFDeduction,
		NSSFDeduction:   breakdown.NSSFDeduction,
		Advances:        breakdown.Advances,
		OtherDeductions: breakdown.OtherDeductions,
		GrossPay:        breakdown.GrossPay,
		TotalDeductions: breakdown.TotalDeductions,
		NetPay:          breakdown.NetPay,
	}

	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("commit payroll persist failed", zap.Error(err))
		return PayrollRecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollRecordResponse{}, err
	}

	s.logger.Info("commit payroll success",
		zap.String("request_id", rid),
		zap.String("payroll_id", record.ID.String()),
		zap.String("month", record.Month),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollRecordResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollRecordResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollRecordResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*record), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]PayrollRecordResponse, error) {
	records, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByMonth(ctx context.Context, month string) ([]PayrollRecordResponse, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	records, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(records), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete payroll requested", zap.String("payroll_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete payroll begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete payroll failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete payroll commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete payroll success", zap.String("payroll_id", id))
	return nil
}

// RequestPayslip menulis event ke outbox; pembuatan dokumen dikerjakan consumer.
func (s *service) RequestPayslip(ctx context.Context, id string) error {
	if s.outbox == nil {
		return errors.New("payslip requests are not enabled")
	}

	rid := contextutil.GetRequestID(ctx)

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	event := events.PayslipRequestedEvent{
		EventType:   "payslip_requested",
		RequestID:   rid,
		PayrollID:   record.ID.String(),
		RequestedBy: contextutil.GetUserID(ctx),
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("payslip request outbox persist failed",
			zap.String("payroll_id", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("payslip request queued", zap.String("payroll_id", id))
	return nil
}

// GeneratePayslip membuat artifact PDF untuk satu payroll record dan
// mengembalikan path file-nya. Dipanggil oleh consumer.
func (s *service) GeneratePayslip(ctx context.Context, id string) (string, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	pdf, err := buildPayslipPDF(payslipLines(*record))
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.payslipDir, fmt.Sprintf("payslip-%s-%s.pdf", record.EmployeeID, record.Month))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

func (s *service) findEmployee(ctx context.Context, repo Repository, employeeID string) (*PayrollEmployee, error) {
	empl, err := repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return empl, nil
}

func validateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return payrollerrors.ErrInvalidMonthFormat
	}
	return nil
}

func mapToBreakdownResponse(empl *PayrollEmployee, month string, b *Breakdown) BreakdownResponse {
	return BreakdownResponse{
		EmployeeID:      empl.ID.String(),
		EmployeeName:    empl.Name,
		Month:           month,
		BasicSalary:     b.BasicSalary,
		OvertimeHours:   b.OvertimeHours,
		OvertimeRate:    b.OvertimeRate,
		OvertimeAmount:  b.OvertimeAmount,
		Bonuses:         b.Bonuses,
		GrossPay:        b.GrossPay,
		NHIFDeduction:   b.NHIFDeduction,
		NSSFDeduction:   b.NSSFDeduction,
		Advances:        b.Advances,
		OtherDeductions: b.OtherDeductions,
		TotalDeductions: b.TotalDeductions,
		NetPay:          b.NetPay,
	}
}

func mapToResponse(record PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:              record.ID.String(),
		EmployeeID:      record.EmployeeID.String(),
		EmployeeName:    record.EmployeeName,
		Month:           record.Month,
		BasicSalary:     record.BasicSalary,
		OvertimeHours:   record.OvertimeHours,
		OvertimeRate:    record.OvertimeRate,
		Bonuses:         record.Bonuses,
		NHIFDeduction:   record.NHIFDeduction,
		NSSFDeduction:   record.NSSFDeduction,
		Advances:        record.Advances,
		OtherDeductions: record.OtherDeductions,
		GrossPay:        record.GrossPay,
		TotalDeductions: record.TotalDeductions,
		NetPay:          record.NetPay,
		CreatedAt:       record.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(records []PayrollRecord) []PayrollRecordResponse {
	resp := make([]PayrollRecordResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}
