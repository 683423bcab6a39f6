package currency

import (
	"context"
	"errors"
	"time"

	currencyerrors "go-hrms/internal/currency/errors"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultDisplayCurrency = USD
	preferenceTTL          = 12 * time.Hour
)

func preferenceKey(userID string) string {
	return "currency:display:" + userID
}

// PreferenceStore keeps each user's display currency in Redis.
type PreferenceStore struct {
	rdb *redis.Client
}

func NewPreferenceStore(rdb *redis.Client) *PreferenceStore {
	return &PreferenceStore{rdb: rdb}
}

// Get returns the stored display currency, or DefaultDisplayCurrency when
// nothing was stored.
func (p *PreferenceStore) Get(ctx context.Context, userID string) (string, error) {
	if p.rdb == nil || userID == "" {
		return DefaultDisplayCurrency, nil
	}

	val, err := p.rdb.Get(ctx, preferenceKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return DefaultDisplayCurrency, nil
	}
	if err != nil {
		return "", err
	}
	if !IsSupported(val) {
		return DefaultDisplayCurrency, nil
	}
	return val, nil
}

func (p *PreferenceStore) Set(ctx context.Context, userID, code string) error {
	if !IsSupported(code) {
		return currencyerrors.ErrUnsupportedCurrency
	}
	if p.rdb == nil {
		return nil
	}
	return p.rdb.Set(ctx, preferenceKey(userID), code, preferenceTTL).Err()
}
