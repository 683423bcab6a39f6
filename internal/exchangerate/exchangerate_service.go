package exchangerate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-hrms/internal/events"
	exchangerateerrors "go-hrms/internal/exchangerate/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dberr"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	activeRateCacheKey    = "exchange_rates:active"
	activeRateCacheGenKey = "exchange_rates:active:gen"
	activeRateCacheTTL    = time.Hour
)

// writeActiveRateScript fills the cache only while the generation still
// matches the one read before the database lookup. Every invalidation bumps
// the generation, so a lookup that raced a rate change is never cached.
var writeActiveRateScript = redis.NewScript(`
if (redis.call("GET", KEYS[2]) or "0") ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

//go:generate mockgen -source=exchangerate_service.go -destination=mock/exchangerate_service_mock.go -package=mock
type Service interface {
	// GetActiveRate returns nil, nil when no rate is active.
	GetActiveRate(ctx context.Context) (*ExchangeRateResponse, error)
	SetActiveRate(ctx context.Context, actorID string, req SetActiveRateRequest) (ExchangeRateResponse, error)
	ArchiveRate(ctx context.Context, id string) (ExchangeRateResponse, error)
	ActivateRate(ctx context.Context, actorID, id string) (ExchangeRateResponse, error)
	GetAllRates(ctx context.Context) ([]ExchangeRateResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("exchangerate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("exchangerate.service")
	}

	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		rdb:    rdb,
		logger: l,
	}
}

func (s *service) GetActiveRate(ctx context.Context) (*ExchangeRateResponse, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	v, err, _ := s.sf.Do(activeRateCacheKey, func() (any, error) {
		gen := s.cacheGeneration(ctx)

		rate, err := s.repo.FindActive(ctx)
		if err != nil {
			if dberr.IsNotFound(err) {
				return (*ExchangeRateResponse)(nil), nil
			}
			return nil, err
		}

		resp := mapToResponse(*rate)
		s.writeCache(ctx, gen, resp)
		return &resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*ExchangeRateResponse), nil
}

func (s *service) SetActiveRate(
	ctx context.Context,
	actorID string,
	req SetActiveRateRequest,
) (ExchangeRateResponse, error) {
	if !req.Rate.IsPositive() {
		return ExchangeRateResponse{}, exchangerateerrors.ErrInvalidRate
	}

	effectiveFrom, err := time.Parse(time.DateOnly, req.EffectiveFrom)
	if err != nil {
		return ExchangeRateResponse{}, exchangerateerrors.ErrInvalidDateFormat
	}

	rate := &ExchangeRate{
		ID:             uuid.New(),
		BaseCurrency:   CurrencyUSD,
		TargetCurrency: CurrencyTRY,
		Rate:           req.Rate,
		EffectiveFrom:  effectiveFrom,
		IsActive:       true,
		Note:           req.Note,
		CreatedBy:      parseOptionalUUID(actorID),
		CreatedAt:      time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExchangeRateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeactivateAll(ctx); err != nil {
		return ExchangeRateResponse{}, err
	}

	if err := qtx.Create(ctx, rate); err != nil {
		if dberr.IsUniqueViolation(err, SingleActiveIndex) {
			return ExchangeRateResponse{}, exchangerateerrors.ErrActiveRateConflict
		}
		return ExchangeRateResponse{}, err
	}

	if err := s.enqueueActivated(ctx, tx, *rate, actorID); err != nil {
		return ExchangeRateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExchangeRateResponse{}, err
	}

	s.invalidateCache(ctx)
	s.logger.Info("exchange rate activated",
		zap.String("exchange_rate_id", rate.ID.String()),
		zap.String("rate", rate.Rate.String()),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)

	return mapToResponse(*rate), nil
}

// ArchiveRate deactivates one record. It never promotes another record, so
// archiving the active rate leaves the store without one.
func (s *service) ArchiveRate(ctx context.Context, id string) (ExchangeRateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExchangeRateResponse{}, exchangerateerrors.ErrInvalidRateID
	}

	if err := s.repo.SetActive(ctx, id, false); err != nil {
		if dberr.IsNotFound(err) {
			return ExchangeRateResponse{}, exchangerateerrors.ErrRateNotFound
		}
		return ExchangeRateResponse{}, err
	}

	s.invalidateCache(ctx)

	rate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ExchangeRateResponse{}, err
	}

	return mapToResponse(*rate), nil
}

func (s *service) ActivateRate(ctx context.Context, actorID, id string) (ExchangeRateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExchangeRateResponse{}, exchangerateerrors.ErrInvalidRateID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExchangeRateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rate, err := qtx.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return ExchangeRateResponse{}, exchangerateerrors.ErrRateNotFound
		}
		return ExchangeRateResponse{}, err
	}

	if !rate.IsActive {
		if err := qtx.DeactivateAll(ctx); err != nil {
			return ExchangeRateResponse{}, err
		}
		if err := qtx.SetActive(ctx, id, true); err != nil {
			if dberr.IsUniqueViolation(err, SingleActiveIndex) {
				return ExchangeRateResponse{}, exchangerateerrors.ErrActiveRateConflict
			}
			return ExchangeRateResponse{}, err
		}
		rate.IsActive = true

		if err := s.enqueueActivated(ctx, tx, *rate, actorID); err != nil {
			return ExchangeRateResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ExchangeRateResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*rate), nil
}

func (s *service) GetAllRates(ctx context.Context) ([]ExchangeRateResponse, error) {
	rates, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rates), nil
}

func (s *service) enqueueActivated(ctx context.Context, tx *sql.Tx, rate ExchangeRate, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	requestID := contextutil.GetRequestID(ctx)
	payload := events.ExchangeRateActivatedEvent{
		EventType:      "exchange_rate_activated",
		RequestID:      requestID,
		ExchangeRateID: rate.ID.String(),
		BaseCurrency:   rate.BaseCurrency,
		TargetCurrency: rate.TargetCurrency,
		Rate:           rate.Rate.String(),
		EffectiveFrom:  rate.EffectiveFrom.Format(time.DateOnly),
		ActivatedBy:    actorID,
		OccurredAt:     time.Now().UTC(),
	}

	event, err := kafka.NewOutboxEvent(
		requestID,
		"exchange_rate",
		rate.ID.String(),
		payload.EventType,
		events.ExchangeRateActivatedTopic,
		payload,
	)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) readCache(ctx context.Context) (*ExchangeRateResponse, bool) {
	if s.rdb == nil {
		return nil, false
	}

	raw, err := s.rdb.Get(ctx, activeRateCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read active rate cache failed", zap.Error(err))
		}
		return nil, false
	}

	var resp ExchangeRateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

// cacheGeneration returns "" when the generation cannot be read, which
// disables the cache write for this lookup.
func (s *service) cacheGeneration(ctx context.Context) string {
	if s.rdb == nil {
		return ""
	}

	gen, err := s.rdb.Get(ctx, activeRateCacheGenKey).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "0"
	case err != nil:
		s.logger.Warn("read active rate cache generation failed", zap.Error(err))
		return ""
	}
	return gen
}

func (s *service) writeCache(ctx context.Context, gen string, resp ExchangeRateResponse) {
	if s.rdb == nil || gen == "" {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}

	written, err := writeActiveRateScript.Run(
		ctx,
		s.rdb,
		[]string{activeRateCacheKey, activeRateCacheGenKey},
		gen,
		string(payload),
		activeRateCacheTTL.Milliseconds(),
	).Int()
	if err != nil {
		s.logger.Warn("write active rate cache failed", zap.Error(err))
		return
	}
	if written == 0 {
		s.logger.Debug("active rate changed during lookup, cache not filled")
	}
}

// invalidateCache bumps the generation before deleting the entry so any
// lookup already in flight cannot write its result back.
func (s *service) invalidateCache(ctx context.Context) {
	s.sf.Forget(activeRateCacheKey)
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, activeRateCacheGenKey).Err(); err != nil {
		s.logger.Warn("bump active rate cache generation failed", zap.Error(err))
	}
	if err := s.rdb.Del(ctx, activeRateCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate active rate cache failed", zap.Error(err))
	}
}

func parseOptionalUUID(id string) *uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return &parsed
}
