package consumer

import (
	"context"
	"encoding/json"
	"payrollpro/internal/events"
	"payrollpro/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumePayslipRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip")
	log.Info("payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip consumer stopped")
				return
			}
			log.Error("fetch payslip message failed", zap.Error(err))
			continue
		}

		var event events.PayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		path, err := payrollService.GeneratePayslip(ctx, event.PayrollID)
		if err != nil {
			log.Error("generate payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip message failed", zap.Error(err))
			continue
		}

		log.Info("payslip generated",
			zap.String("payroll_id", event.PayrollID),
			zap.String("path", path),
		)
	}
}
