package diagnostics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const checkTimeout = 5 * time.Second

//go:generate mockgen -source=diagnostics_service.go -destination=mock/diagnostics_service_mock.go -package=mock
type Service interface {
	RunAll(ctx context.Context) Report
}

type service struct {
	checks []Check
	now    func() time.Time
	logger *zap.Logger
}

func NewService(checks []Check, logger ...*zap.Logger) Service {
	l := zap.L().Named("diagnostics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("diagnostics.service")
	}
	return &service{checks: checks, now: time.Now, logger: l}
}

// RunAll runs every check concurrently; a failing check never stops the others.
func (s *service) RunAll(ctx context.Context) Report {
	results := make([]CheckResult, len(s.checks))

	var g errgroup.Group
	for i, check := range s.checks {
		g.Go(func() error {
			results[i] = s.run(ctx, check)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Status: StatusOK, Checks: results, RanAt: s.now().UTC().Format(time.RFC3339)}
	for _, r := range results {
		switch r.Status {
		case StatusError:
			report.Status = StatusError
		case StatusWarning:
			if report.Status == StatusOK {
				report.Status = StatusWarning
			}
		}
	}

	s.logger.Info("diagnostics finished", zap.String("status", report.Status), zap.Int("checks", len(results)))
	return report
}

func (s *service) run(ctx context.Context, check Check) (result CheckResult) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("diagnostic check panicked", zap.String("check", check.Name), zap.Any("panic", r))
			result = CheckResult{Name: check.Name, Status: StatusError, Message: "فشل تنفيذ الفحص"}
		}
		result.DurationMs = time.Since(started).Milliseconds()
	}()

	status, message, err := check.Run(ctx)
	result = CheckResult{Name: check.Name, Status: status, Message: message}
	if err != nil {
		result.Detail = err.Error()
		s.logger.Warn("diagnostic check failed", zap.String("check", check.Name), zap.Error(err))
	}
	return result
}
