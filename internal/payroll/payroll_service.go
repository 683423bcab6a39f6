package payroll

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-hrms/internal/currency"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dberr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	StatusDraft    = "DRAFT"
	StatusApproved = "APPROVED"
	StatusPaid     = "PAID"
)

var statusLabels = map[string]string{
	StatusDraft:    "مسودة",
	StatusApproved: "معتمد",
	StatusPaid:     "مدفوع",
}

// PayslipStorage is where generated payslip PDFs are written and served from.
type PayslipStorage struct {
	Dir     string
	BaseURL string
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id, displayCurrency string) (PayrollResponse, error)
	GetBreakdown(ctx context.Context, id string) (PayrollBreakdownResponse, error)
	Regenerate(ctx context.Context, actorID, id string, req RegeneratePayrollRequest) (PayrollResponse, error)
	Approve(ctx context.Context, actorID, id string) (PayrollResponse, error)
	MarkAsPaid(ctx context.Context, actorID, id string) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	RequestPayslip(ctx context.Context, actorID, id string) (PayrollResponse, error)
	GeneratePayslip(ctx context.Context, id string) (PayrollResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	outbox  kafka.OutboxRepository
	storage PayslipStorage
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	storage PayslipStorage,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}

	if storage.Dir == "" {
		storage.Dir = filepath.Join("storage", "payslips")
	}
	if storage.BaseURL == "" {
		storage.BaseURL = "/files/payslips"
	}

	return &service{
		db:      db,
		repo:    repo,
		outbox:  outbox,
		storage: storage,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	actorID string,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	periodStart, periodEnd, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return PayrollResponse{}, err
	}

	inputs := req.toInputs()
	result, err := Calculate(inputs)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !exists {
		return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, req.EmployeeID, periodStart, periodEnd, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	if overlap {
		return PayrollResponse{}, payrollerrors.ErrPayrollOverlap
	}

	rate, err := s.lockedRate(ctx, qtx)
	if err != nil {
		return PayrollResponse{}, err
	}

	payroll := &Payroll{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      StatusDraft,
		CreatedBy:   createdBy,
	}
	applyCalculation(payroll, inputs, result)
	stampRate(payroll, rate)

	if err := qtx.Create(ctx, payroll); err != nil {
		return PayrollResponse{}, err
	}

	components := buildComponents(payroll)
	if err := qtx.ReplaceComponents(ctx, payroll.ID.String(), components); err != nil {
		return PayrollResponse{}, err
	}
	payroll.Components = components

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll created",
		zap.String("payroll_id", payroll.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("exchange_rate", payroll.ExchangeRate.String()),
		zap.Bool("exchange_rate_fallback", payroll.ExchangeRateFallback),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)

	return mapToResponse(*payroll), nil
}

func (s *service) GetAll(ctx context.Context, filterReq GetPayrollsFilterRequest) ([]PayrollResponse, error) {
	filter, err := buildQueryFilter(filterReq)
	if err != nil {
		return nil, err
	}

	payrolls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, id, displayCurrency string) (PayrollResponse, error) {
	if displayCurrency == "" {
		displayCurrency = currency.USD
	}
	if !currency.IsSupported(displayCurrency) {
		return PayrollResponse{}, payrollerrors.ErrInvalidDisplayCurrency
	}

	payroll, err := s.findPayroll(ctx, s.repo, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	resp := mapToResponse(*payroll)
	resp.Display = displayAmounts(*payroll, displayCurrency)
	return resp, nil
}

func (s *service) GetBreakdown(ctx context.Context, id string) (PayrollBreakdownResponse, error) {
	payroll, err := s.findPayroll(ctx, s.repo, id)
	if err != nil {
		return PayrollBreakdownResponse{}, err
	}

	return buildBreakdown(*payroll), nil
}

func (s *service) Regenerate(
	ctx context.Context,
	actorID, id string,
	req RegeneratePayrollRequest,
) (PayrollResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := s.findPayroll(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if payroll.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrRegenerateOnlyDraft
	}

	inputs := req.toInputs()
	result, err := Calculate(inputs)
	if err != nil {
		return PayrollResponse{}, err
	}

	rate, err := s.lockedRate(ctx, qtx)
	if err != nil {
		return PayrollResponse{}, err
	}

	applyCalculation(payroll, inputs, result)
	stampRate(payroll, rate)
	payroll.PayslipURL = nil
	payroll.PayslipGeneratedAt = nil

	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, err
	}

	components := buildComponents(payroll)
	if err := qtx.ReplaceComponents(ctx, payroll.ID.String(), components); err != nil {
		return PayrollResponse{}, err
	}
	payroll.Components = components

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*payroll), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	approverID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := s.findPayroll(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if payroll.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	payroll.Status = StatusApproved
	payroll.ApprovedBy = &approverID
	payroll.ApprovedAt = &now

	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, err
	}

	if err := s.enqueuePayslipRequested(ctx, tx, payroll.ID.String(), actorID); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*payroll), nil
}

func (s *service) MarkAsPaid(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := s.findPayroll(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if payroll.Status != StatusApproved {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	payroll.Status = StatusPaid
	payroll.PaidAt = &now

	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*payroll), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := s.findPayroll(ctx, qtx, id)
	if err != nil {
		return err
	}
	if payroll.Status != StatusDraft {
		return payrollerrors.ErrDeleteOnlyDraft
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) RequestPayslip(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	payroll, err := s.findPayroll(ctx, s.repo.WithTx(tx), id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if payroll.Status == StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrPayslipRequiresApproval
	}

	if err := s.enqueuePayslipRequested(ctx, tx, id, actorID); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*payroll), nil
}

// GeneratePayslip renders the payslip PDF at the stamped rate and records
// where it can be downloaded.
func (s *service) GeneratePayslip(ctx context.Context, id string) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := s.findPayroll(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	pdf, err := buildSimplePayslipPDF(payslipLines(*payroll))
	if err != nil {
		return PayrollResponse{}, err
	}

	if err := os.MkdirAll(s.storage.Dir, 0o755); err != nil {
		return PayrollResponse{}, err
	}

	fileName := fmt.Sprintf("payslip_%s_%s.pdf", payroll.PeriodStart.Format("200601"), payroll.ID.String())
	if err := os.WriteFile(filepath.Join(s.storage.Dir, fileName), pdf, 0o644); err != nil {
		return PayrollResponse{}, err
	}

	url := strings.TrimRight(s.storage.BaseURL, "/") + "/" + fileName
	now := time.Now().UTC()
	payroll.PayslipURL = &url
	payroll.PayslipGeneratedAt = &now

	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payslip generated",
		zap.String("payroll_id", id),
		zap.String("file", fileName),
	)

	return mapToResponse(*payroll), nil
}

func (s *service) findPayroll(ctx context.Context, repo Repository, id string) (*Payroll, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayrollID
	}

	payroll, err := repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, payrollerrors.ErrPayrollNotFound
		}
		return nil, err
	}
	if payroll == nil {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	return payroll, nil
}

func (s *service) enqueuePayslipRequested(ctx context.Context, tx *sql.Tx, payrollID, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	requestID := contextutil.GetRequestID(ctx)
	payload := events.PayrollPayslipRequestedEvent{
		EventType:   "payslip_requested",
		RequestID:   requestID,
		PayrollID:   payrollID,
		RequestedBy: actorID,
		OccurredAt:  time.Now().UTC(),
	}

	event, err := kafka.NewOutboxEvent(
		requestID,
		"payroll",
		payrollID,
		payload.EventType,
		events.PayrollPayslipRequestedTopic,
		payload,
	)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, event)
}

func applyCalculation(p *Payroll, in Inputs, res Result) {
	p.Category = res.Category.Name
	p.ExperienceYears = in.ExperienceYears
	p.MinSalary = res.Category.MinSalary
	p.AdminLevel = res.Category.AdminLevel
	p.QualificationAllowance = res.Category.QualificationAllowance
	p.ExperienceAllowance = res.ExperienceTotal
	p.AdditionalAmount = in.AdditionalAmount
	p.OvertimeHours = in.OvertimeHours
	p.OvertimeRate = in.OvertimeRate
	p.Advances = in.Advances
	p.Loans = in.Loans
	p.OtherDeductions = in.OtherDeductions
	p.GrossSalary = res.GrossSalary
	p.TotalDeduction = res.TotalDeduction
	p.NetSalary = res.NetSalary
}

// lockedRate reads the active rate inside the payroll transaction. The share
// lock makes a concurrent rate change wait until this payroll commits, so the
// stamped rate is the one active at commit time.
func (s *service) lockedRate(ctx context.Context, qtx Repository) (currency.ResolvedRate, error) {
	active, err := qtx.LockActiveRate(ctx)
	if err != nil {
		return currency.ResolvedRate{}, err
	}
	if active == nil {
		s.logger.Warn("no active exchange rate, stamping fallback", zap.String("rate", currency.FallbackRate.String()))
		return currency.FallbackResolvedRate(), nil
	}

	return currency.ResolvedRate{
		Rate:           active.Rate,
		ExchangeRateID: active.ID.String(),
		EffectiveFrom:  active.EffectiveFrom.Format(time.DateOnly),
	}, nil
}

func stampRate(p *Payroll, rate currency.ResolvedRate) {
	p.ExchangeRate = rate.Rate
	p.ExchangeRateFallback = rate.Fallback
	p.ExchangeRateID = nil
	p.ExchangeRateEffectiveFrom = nil

	if id, err := uuid.Parse(rate.ExchangeRateID); err == nil {
		p.ExchangeRateID = &id
	}
	if effective, err := time.Parse(time.DateOnly, rate.EffectiveFrom); err == nil {
		p.ExchangeRateEffectiveFrom = &effective
	}
}

func buildComponents(p *Payroll) []PayrollComponent {
	type line struct {
		kind, code, name string
		amount           decimal.Decimal
		always           bool
	}

	overtime := p.OvertimeHours.Mul(p.OvertimeRate)
	lines := []line{
		{ComponentEarning, "MIN_SALARY", "الحد الأدنى للراتب", p.MinSalary, true},
		{ComponentEarning, "ADMIN_LEVEL", "المستوى الإداري", p.AdminLevel, true},
		{ComponentEarning, "QUALIFICATION", "بدل المؤهل العلمي", p.QualificationAllowance, true},
		{ComponentEarning, "EXPERIENCE", "بدل سنوات الخبرة", p.ExperienceAllowance, true},
		{ComponentEarning, "ADDITIONAL", "مبلغ إضافي", p.AdditionalAmount, false},
		{ComponentEarning, "OVERTIME", "العمل الإضافي", overtime, false},
		{ComponentDeduction, "ADVANCES", "السلف", p.Advances, false},
		{ComponentDeduction, "LOANS", "القروض", p.Loans, false},
		{ComponentDeduction, "OTHER_DEDUCTIONS", "خصومات أخرى", p.OtherDeductions, false},
	}

	components := make([]PayrollComponent, 0, len(lines))
	for i, l := range lines {
		if !l.always && l.amount.IsZero() {
			continue
		}
		components = append(components, PayrollComponent{
			ID:            uuid.New(),
			PayrollID:     p.ID,
			ComponentType: l.kind,
			Code:          l.code,
			Name:          l.name,
			Amount:        l.amount,
			SortOrder:     i,
		})
	}
	return components
}

func buildBreakdown(p Payroll) PayrollBreakdownResponse {
	components := p.Components
	if len(components) == 0 {
		components = buildComponents(&p)
	}

	resp := PayrollBreakdownResponse{
		PayrollID:      p.ID.String(),
		ExchangeRate:   p.ExchangeRate,
		Earnings:       []PayrollBreakdownLine{},
		Deductions:     []PayrollBreakdownLine{},
		GrossSalaryUSD: p.GrossSalary,
		GrossSalaryTRY: toTRY(p.GrossSalary, p.ExchangeRate),
		DeductionUSD:   p.TotalDeduction,
		DeductionTRY:   toTRY(p.TotalDeduction, p.ExchangeRate),
		NetSalaryUSD:   p.NetSalary,
		NetSalaryTRY:   toTRY(p.NetSalary, p.ExchangeRate),
	}

	for _, c := range components {
		line := PayrollBreakdownLine{
			Type:      c.ComponentType,
			Code:      c.Code,
			Name:      c.Name,
			AmountUSD: c.Amount,
			AmountTRY: toTRY(c.Amount, p.ExchangeRate),
		}
		if c.ComponentType == ComponentDeduction {
			resp.Deductions = append(resp.Deductions, line)
		} else {
			resp.Earnings = append(resp.Earnings, line)
		}
	}

	return resp
}

func displayAmounts(p Payroll, code string) *DisplayAmounts {
	convert := func(v decimal.Decimal) decimal.Decimal {
		if code == currency.TRY {
			return toTRY(v, p.ExchangeRate)
		}
		return v.Round(2)
	}

	gross := convert(p.GrossSalary)
	deduction := convert(p.TotalDeduction)
	net := convert(p.NetSalary)
	opts := currency.FormatOptions{Currency: code, ShowSymbol: true}

	return &DisplayAmounts{
		Currency:                code,
		GrossSalary:             gross,
		TotalDeduction:          deduction,
		NetSalary:               net,
		GrossSalaryFormatted:    currency.Format(gross, opts),
		TotalDeductionFormatted: currency.Format(deduction, opts),
		NetSalaryFormatted:      currency.Format(net, opts),
	}
}

func toTRY(usd, rate decimal.Decimal) decimal.Decimal {
	return currency.ConvertUSDToTRY(usd, rate).Round(2)
}

func buildQueryFilter(req GetPayrollsFilterRequest) (PayrollQueryFilter, error) {
	var filter PayrollQueryFilter

	if req.Period != "" {
		start, err := time.Parse("2006-01", req.Period)
		if err != nil {
			return PayrollQueryFilter{}, payrollerrors.ErrInvalidPeriodFormat
		}
		end := start.AddDate(0, 1, -1)
		filter.PeriodStart = &start
		filter.PeriodEnd = &end
	}

	if req.Status != "" {
		status := strings.ToUpper(req.Status)
		if _, ok := statusLabels[status]; !ok {
			return PayrollQueryFilter{}, payrollerrors.ErrInvalidStatusFilter
		}
		filter.Status = &status
	}

	if req.EmployeeID != "" {
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return PayrollQueryFilter{}, payrollerrors.ErrInvalidEmployeeID
		}
		employeeID := req.EmployeeID
		filter.EmployeeID = &employeeID
	}

	return filter, nil
}

func parsePeriod(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.DateOnly, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(time.DateOnly, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func formatOptionalTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	v := t.Format(layout)
	return &v
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:                        p.ID.String(),
		EmployeeID:                p.EmployeeID.String(),
		PeriodStart:               p.PeriodStart.Format(time.DateOnly),
		PeriodEnd:                 p.PeriodEnd.Format(time.DateOnly),
		Category:                  p.Category,
		ExperienceYears:           p.ExperienceYears,
		GrossSalary:               p.GrossSalary,
		TotalDeduction:            p.TotalDeduction,
		NetSalary:                 p.NetSalary,
		ExchangeRate:              p.ExchangeRate,
		ExchangeRateEffectiveFrom: formatOptionalTime(p.ExchangeRateEffectiveFrom, time.DateOnly),
		ExchangeRateFallback:      p.ExchangeRateFallback,
		Status:                    p.Status,
		StatusLabel:               statusLabels[p.Status],
		CreatedBy:                 p.CreatedBy.String(),
		ApprovedAt:                formatOptionalTime(p.ApprovedAt, time.RFC3339),
		PaidAt:                    formatOptionalTime(p.PaidAt, time.RFC3339),
		PayslipURL:                p.PayslipURL,
		PayslipGeneratedAt:        formatOptionalTime(p.PayslipGeneratedAt, time.RFC3339),
	}

	if p.Employee != nil {
		resp.EmployeeNumber = p.Employee.EmployeeNumber
		resp.EmployeeName = p.Employee.FullName
	}
	if p.ExchangeRateID != nil {
		v := p.ExchangeRateID.String()
		resp.ExchangeRateID = &v
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}

	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, payroll := range payrolls {
		resp[i] = mapToResponse(payroll)
	}
	return resp
}
