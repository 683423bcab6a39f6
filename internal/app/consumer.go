package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/payroll"
	"go-hrms/internal/serviceyear"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupPrefix = "go-hrms-"

func newReader(broker, topic, group string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        consumerGroupPrefix + group,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	serviceYearService := serviceyear.NewService(sqlDB, serviceyear.NewRepository(gormDB))
	payrollService := payroll.NewService(
		sqlDB,
		payroll.NewRepository(gormDB),
		outboxRepo,
		payroll.PayslipStorage{Dir: cfg.PayslipDir, BaseURL: payslipBaseURL},
	)

	lifecycleReader := newReader(cfg.KafkaBroker, events.EmployeeCreatedTopic, "service-year")
	defer lifecycleReader.Close()
	payslipReader := newReader(cfg.KafkaBroker, events.PayrollPayslipRequestedTopic, "payslip")
	defer payslipReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, serviceYearService, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumePayrollPayslipRequested(ctx, payslipReader, payrollService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}
