package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-hrms/internal/events"
	serviceyearerrors "go-hrms/internal/serviceyear/errors"
	"go-hrms/internal/serviceyear"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	serviceYearService serviceyear.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		handleEmployeeLifecycle(ctx, reader, msg, serviceYearService, log)
	}
}

func handleEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	msg kafkago.Message,
	serviceYearService serviceyear.Service,
	log *zap.Logger,
) {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee_created event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	var exists bool
	err := retry(ctx, func(ctx context.Context) error {
		_, err := serviceYearService.CreateFromHire(ctx, event.EmployeeID, event.HireDate)
		if errors.Is(err, serviceyearerrors.ErrServiceYearExists) {
			exists = true
			return nil
		}
		return err
	})
	switch {
	case err != nil && ctx.Err() != nil:
		// Nothing after this offset is committed during shutdown, so the
		// group resumes from here on the next start.
		log.Warn("consumer stopping before service year was created",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return
	case err != nil:
		// The reader has already moved past this offset; committing makes
		// the drop explicit. The record can be added through the API.
		log.Error("create service year from employee_created failed, dropping event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
			zap.Int("attempts", handlerAttempts),
			zap.Error(err),
		)
	case exists:
		log.Warn("service year already exists for event, skipping",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
		)
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit employee lifecycle message failed", zap.Error(err))
		return
	}

	if err != nil || exists {
		return
	}

	log.Info("service year created from employee_created event",
		zap.String("employee_id", event.EmployeeID),
		zap.String("hire_date", event.HireDate),
	)
}
