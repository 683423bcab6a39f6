package app

import (
	"go-hrms/internal/absence"
	"go-hrms/internal/course"
	"go-hrms/internal/employee"
	"go-hrms/internal/evaluation"
	"go-hrms/internal/exchangerate"
	"go-hrms/internal/leave"
	"go-hrms/internal/payroll"
	"go-hrms/internal/promotion"
	"go-hrms/internal/rbac"
	"go-hrms/internal/reward"
	"go-hrms/internal/serviceyear"
	"go-hrms/internal/user"

	"gorm.io/gorm"
)

// Tables and indexes gorm tags cannot express.
var rawMigrations = []string{
	`CREATE TABLE IF NOT EXISTS counters (
		counter_type VARCHAR(50) PRIMARY KEY,
		last_value BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id UUID PRIMARY KEY,
		request_id TEXT,
		aggregate_type VARCHAR(50) NOT NULL,
		aggregate_id TEXT NOT NULL,
		event_type VARCHAR(100) NOT NULL,
		topic VARCHAR(200) NOT NULL,
		payload JSONB NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		retry_count INT NOT NULL DEFAULT 0,
		next_retry_at TIMESTAMPTZ,
		processed_at TIMESTAMPTZ,
		error_message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending ON outbox_events (status, created_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + exchangerate.SingleActiveIndex +
		` ON exchange_rates ((is_active)) WHERE is_active`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&rbac.PolicyRow{},
		&employee.Employee{},
		&exchangerate.ExchangeRate{},
		&payroll.Payroll{},
		&payroll.PayrollComponent{},
		&leave.Leave{},
		&course.Course{},
		&evaluation.Evaluation{},
		&promotion.Promotion{},
		&reward.Reward{},
		&absence.Absence{},
		&serviceyear.ServiceYear{},
	); err != nil {
		return err
	}

	for _, stmt := range rawMigrations {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
