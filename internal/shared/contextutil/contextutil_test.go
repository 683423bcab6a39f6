package contextutil_test

import (
	"context"
	"testing"

	"go-hrms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestContextUtil_Metadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserID(ctx, "user-1")

	meta := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "rid-1", meta.RequestID)
	assert.Equal(t, "user-1", meta.UserID)
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestContextUtil_GetLogger(t *testing.T) {
	scoped := zap.NewNop().Named("scoped")
	fallback := zap.NewNop().Named("fallback")

	assert.Same(t, scoped, contextutil.GetLogger(contextutil.WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
