package kafka

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := NewOutboxEvent("req-1", "employee", "emp-1", "employee_created", "hr.employee.lifecycle.v1", map[string]string{"employee_id": "emp-1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, OutboxStatusPending, event.Status)
	assert.JSONEq(t, `{"employee_id":"emp-1"}`, string(event.Payload))
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: OutboxStatusPending}
	assert.NoError(t, ValidateOutboxEvent(valid))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.EqualError(t, ValidateOutboxEvent(missingTopic), "outbox topic is required")

	badStatus := valid
	badStatus.Status = "queued"
	assert.EqualError(t, ValidateOutboxEvent(badStatus), "invalid outbox status: queued")
}

func TestOutboxRepository_CreateUsesTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("evt-1", "req-1", "payroll", "pay-1", "payslip_requested", "hr.payroll.payslip.requested.v1", []byte(`{}`), OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewOutboxRepository(db).WithTx(tx)
	err = repo.Create(context.Background(), OutboxEvent{
		ID:            "evt-1",
		RequestID:     "req-1",
		AggregateType: "payroll",
		AggregateID:   "pay-1",
		EventType:     "payslip_requested",
		Topic:         "hr.payroll.payslip.requested.v1",
		Payload:       []byte(`{}`),
		Status:        OutboxStatusPending,
	})
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
