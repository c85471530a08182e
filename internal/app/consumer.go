package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"payrollpro/internal/events"
	"payrollpro/internal/messaging/kafka"
	"payrollpro/internal/messaging/kafka/consumer"
	"payrollpro/internal/payroll"
	"payrollpro/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	payrollService := payroll.NewServiceWithOutbox(
		sqlDB,
		payrollRepo,
		outboxRepo,
		os.Getenv("PAYSLIP_DIR"),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayslipRequestedTopic,
		GroupID:        "payrollpro-payslip",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipRequested(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
