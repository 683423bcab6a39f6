package employee

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
)

// EventPublisher records employee lifecycle events inside the caller's
// transaction; the outbox worker delivers them to Kafka.
type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, tx *sql.Tx, event events.EmployeeCreatedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishEmployeeCreated(context.Context, *sql.Tx, events.EmployeeCreatedEvent) error {
	return nil
}

type outboxEventPublisher struct {
	outbox kafka.OutboxRepository
}

func NewOutboxEventPublisher(outbox kafka.OutboxRepository) EventPublisher {
	if outbox == nil {
		return noopEventPublisher{}
	}
	return &outboxEventPublisher{outbox: outbox}
}

func (p *outboxEventPublisher) PublishEmployeeCreated(
	ctx context.Context,
	tx *sql.Tx,
	event events.EmployeeCreatedEvent,
) error {
	outboxEvent, err := kafka.NewOutboxEvent(
		event.RequestID,
		"employee",
		event.EmployeeID,
		event.EventType,
		events.EmployeeCreatedTopic,
		event,
	)
	if err != nil {
		return err
	}

	return p.outbox.WithTx(tx).Create(ctx, outboxEvent)
}

func newEmployeeCreatedEvent(requestID string, empl *Employee) events.EmployeeCreatedEvent {
	return events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  requestID,
		EmployeeID: empl.ID.String(),
		HireDate:   empl.HireDate.Format(time.DateOnly),
		OccurredAt: time.Now().UTC(),
	}
}
