package consumer

import (
	"context"
	"encoding/json"

	"go-hrms/internal/events"
	"go-hrms/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumePayrollPayslipRequested(
	ctx context.Context,
	reader MessageReader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_payslip")
	log.Info("payroll payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll payslip consumer stopped")
				return
			}
			log.Error("fetch payroll payslip message failed", zap.Error(err))
			continue
		}

		handlePayslipRequested(ctx, reader, msg, payrollService, log)
	}
}

func handlePayslipRequested(
	ctx context.Context,
	reader MessageReader,
	msg kafkago.Message,
	payrollService payroll.Service,
	log *zap.Logger,
) {
	var event events.PayrollPayslipRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payroll payslip event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	var resp payroll.PayrollResponse
	err := retry(ctx, func(ctx context.Context) error {
		var err error
		resp, err = payrollService.GeneratePayslip(ctx, event.PayrollID)
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			log.Warn("consumer stopping before payslip was generated",
				zap.String("payroll_id", event.PayrollID),
				zap.Error(err),
			)
			return
		}
		// Committed so the offset moves past it explicitly; the payslip
		// can be requested again through the API.
		log.Error("generate payslip failed, dropping event",
			zap.String("payroll_id", event.PayrollID),
			zap.String("request_id", event.RequestID),
			zap.Int("attempts", handlerAttempts),
			zap.Error(err),
		)
		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll payslip message failed", zap.Error(err))
		}
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit payroll payslip message failed", zap.Error(err))
		return
	}

	log.Info("payroll payslip generated",
		zap.String("payroll_id", event.PayrollID),
		zap.Stringp("payslip_url", resp.PayslipURL),
	)
}
