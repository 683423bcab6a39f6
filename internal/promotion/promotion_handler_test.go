package promotion_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/promotion"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromotionService struct {
	promotion.Service
	getAllFn  func(ctx context.Context, status string) ([]promotion.PromotionResponse, error)
	approveFn func(ctx context.Context, actorID, id string) (promotion.PromotionResponse, error)
}

func (f *fakePromotionService) GetAll(ctx context.Context, status string) ([]promotion.PromotionResponse, error) {
	return f.getAllFn(ctx, status)
}

func (f *fakePromotionService) Approve(ctx context.Context, actorID, id string) (promotion.PromotionResponse, error) {
	return f.approveFn(ctx, actorID, id)
}

func newPromotionRouter(svc promotion.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "actor-1")
		c.Next()
	})
	h := promotion.NewHandler(svc)
	r.GET("/promotions/export", h.Export)
	r.POST("/promotions/:id/approve", h.Approve)
	return r
}

func TestPromotionHandler_Export_CSV(t *testing.T) {
	svc := &fakePromotionService{
		getAllFn: func(ctx context.Context, status string) ([]promotion.PromotionResponse, error) {
			return []promotion.PromotionResponse{
				{EmployeeName: "EMP-000001 - أحمد", FromCategory: secondGrade, ToCategory: "الدرجة الأولى", PromotionDate: "2026-01-01", Status: promotion.StatusApproved, Reason: "أداء، والتزام"},
				{EmployeeName: "EMP-000002 - سارة", FromCategory: "الدرجة الثالثة", ToCategory: secondGrade, PromotionDate: "2026-02-01", Status: promotion.StatusUnderReview},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	newPromotionRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/promotions/export?format=csv", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "promotions-")

	body := bytes.TrimPrefix(w.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF})
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "أداء، والتزام", records[1][5])
}

func TestPromotionHandler_Approve_UsesActor(t *testing.T) {
	svc := &fakePromotionService{
		approveFn: func(ctx context.Context, actorID, id string) (promotion.PromotionResponse, error) {
			assert.Equal(t, "actor-1", actorID)
			assert.Equal(t, "p-1", id)
			return promotion.PromotionResponse{ID: id, Status: promotion.StatusApproved}, nil
		},
	}

	w := httptest.NewRecorder()
	newPromotionRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/promotions/p-1/approve", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
