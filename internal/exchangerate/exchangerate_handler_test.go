package exchangerate_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/exchangerate"
	exchangerateerrors "go-hrms/internal/exchangerate/errors"
	"go-hrms/internal/exchangerate/mock"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(svc exchangerate.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := exchangerate.NewHandler(svc)
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "3f8a9c1e-0000-4000-8000-000000000001")
		c.Next()
	})
	r.GET("/exchange-rates", h.GetAll)
	r.GET("/exchange-rates/active", h.GetActive)
	r.POST("/exchange-rates", h.SetActive)
	r.POST("/exchange-rates/:id/archive", h.Archive)
	return r
}

func TestExchangeRateHandler_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newTestRouter(svc)

	svc.EXPECT().
		SetActiveRate(gomock.Any(), "3f8a9c1e-0000-4000-8000-000000000001", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req exchangerate.SetActiveRateRequest) (exchangerate.ExchangeRateResponse, error) {
			assert.True(t, decimal.RequireFromString("36.9").Equal(req.Rate))
			return exchangerate.ExchangeRateResponse{ID: "r-1", Rate: req.Rate, IsActive: true}, nil
		})

	body := bytes.NewBufferString(`{"rate":"36.9","effective_from":"2025-04-01"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/exchange-rates", body))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":true`)
}

func TestExchangeRateHandler_SetActive_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/exchange-rates", bytes.NewBufferString(`{"rate":"36.9"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestExchangeRateHandler_GetActive_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newTestRouter(svc)

	svc.EXPECT().GetActiveRate(gomock.Any()).Return(nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exchange-rates/active", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestExchangeRateHandler_Archive_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newTestRouter(svc)

	svc.EXPECT().ArchiveRate(gomock.Any(), "r-9").Return(exchangerate.ExchangeRateResponse{}, exchangerateerrors.ErrRateNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/exchange-rates/r-9/archive", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestExchangeRateHandler_GetAll_Paginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newTestRouter(svc)

	rates := make([]exchangerate.ExchangeRateResponse, 12)
	svc.EXPECT().GetAllRates(gomock.Any()).Return(rates, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exchange-rates?page=2&page_size=10", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":12`)
	assert.Contains(t, w.Body.String(), `"page":2`)
}
