package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
	idempotencyTTL     = 24 * time.Hour
)

// idempotentResponse is what a replay sends back: the original status code
// and response data.
type idempotentResponse struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency replays the cached response of a POST that carried the same
// Idempotency-Key, and rejects a concurrent duplicate while the first one is
// still running. Handlers store their result with RememberIdempotent.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString(ContextUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached idempotentResponse
			if json.Unmarshal([]byte(val), &cached) == nil && cached.Status != 0 {
				response.Success(c, cached.Status, cached.Data, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			contextutil.GetLogger(ctx, nil).Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "الطلب قيد المعالجة، يرجى الانتظار", nil)
			c.Abort()
			return
		}
		defer rdb.Del(ctx, lockKey)

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}

// RememberIdempotent caches status and data under the key Idempotency
// reserved for this request. It is a no-op when the request carried no
// Idempotency-Key.
func RememberIdempotent(c *gin.Context, rdb *redis.Client, status int, data any) {
	if rdb == nil {
		return
	}
	cacheKey := c.GetString(IdempotencyCacheKey)
	if cacheKey == "" {
		return
	}
	body, err := json.Marshal(data)
	if err != nil {
		return
	}
	if payload, err := json.Marshal(idempotentResponse{Status: status, Data: body}); err == nil {
		_ = rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyTTL).Err()
	}
}
