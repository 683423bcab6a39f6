package payroll_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/currency"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testActorID = "7d1f3c2a-0000-4000-8000-000000000001"

func newPayrollRouter(svc payroll.Service, prefs *currency.PreferenceStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := payroll.NewHandler(svc, prefs, nil)
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testActorID)
		c.Next()
	})
	r.GET("/payrolls", h.GetAll)
	r.GET("/payrolls/:id", h.GetByID)
	r.GET("/payrolls/:id/payslip/download", h.DownloadPayslip)
	r.POST("/payrolls", h.Create)
	r.POST("/payrolls/:id/approve", h.Approve)
	r.POST("/payrolls/:id/payslip", h.RequestPayslip)
	r.DELETE("/payrolls/:id", h.Delete)
	return r
}

func TestPayrollHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	svc.EXPECT().
		Create(gomock.Any(), testActorID, gomock.Any()).
		DoAndReturn(func(_ any, _ string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, "الدرجة الأولى", req.Category)
			assert.True(t, d("5").Equal(req.ExperienceYears.Decimal))
			return payroll.PayrollResponse{ID: "p-1", Status: payroll.StatusDraft, NetSalary: d("6246")}, nil
		})

	body := bytes.NewBufferString(`{
		"employee_id":"7d1f3c2a-0000-4000-8000-0000000000aa",
		"period_start":"2025-01-01",
		"period_end":"2025-01-31",
		"category":"الدرجة الأولى",
		"experience_years":"5"
	}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls", body))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"DRAFT"`)
}

func TestPayrollHandler_Create_BlankFieldsReadAsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	svc.EXPECT().
		Create(gomock.Any(), testActorID, gomock.Any()).
		DoAndReturn(func(_ any, _ string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			assert.True(t, decimal.Zero.Equal(req.Loans.Decimal))
			assert.True(t, decimal.Zero.Equal(req.AdditionalAmount.Decimal))
			assert.True(t, decimal.Zero.Equal(req.OvertimeHours.Decimal))
			assert.True(t, d("137").Equal(req.Advances.Decimal))
			assert.True(t, d("2").Equal(req.ExperienceYears.Decimal))
			return payroll.PayrollResponse{ID: "p-2", Status: payroll.StatusDraft}, nil
		})

	body := bytes.NewBufferString(`{
		"employee_id":"7d1f3c2a-0000-4000-8000-0000000000aa",
		"period_start":"2025-01-01",
		"period_end":"2025-01-31",
		"category":"الدرجة الأولى",
		"experience_years":2,
		"advances":"137",
		"loans":"",
		"additional_amount":"  ",
		"overtime_hours":null
	}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls", body))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPayrollHandler_Create_NonNumericAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	body := bytes.NewBufferString(`{
		"employee_id":"7d1f3c2a-0000-4000-8000-0000000000aa",
		"period_start":"2025-01-01",
		"period_end":"2025-01-31",
		"category":"الدرجة الأولى",
		"loans":"abc"
	}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_Create_MissingCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	body := bytes.NewBufferString(`{"employee_id":"7d1f3c2a-0000-4000-8000-0000000000aa","period_start":"2025-01-01","period_end":"2025-01-31"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestPayrollHandler_GetByID_CurrencyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	svc.EXPECT().GetByID(gomock.Any(), "p-1", currency.TRY).Return(payroll.PayrollResponse{ID: "p-1"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls/p-1?currency=TRY", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPayrollHandler_GetByID_SavedPreference(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	r := newPayrollRouter(svc, currency.NewPreferenceStore(rdb))

	redisMock.ExpectGet("currency:display:" + testActorID).SetVal(currency.TRY)
	svc.EXPECT().GetByID(gomock.Any(), "p-1", currency.TRY).Return(payroll.PayrollResponse{ID: "p-1"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls/p-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestPayrollHandler_GetAll_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	svc.EXPECT().GetAll(gomock.Any(), payroll.GetPayrollsFilterRequest{Period: "2025"}).
		Return(nil, payrollerrors.ErrInvalidPeriodFormat)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls?period=2025", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_Approve_InvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	svc.EXPECT().Approve(gomock.Any(), testActorID, "p-1").
		Return(payroll.PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/p-1/approve", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestPayrollHandler_RequestPayslip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	svc.EXPECT().RequestPayslip(gomock.Any(), testActorID, "p-1").
		Return(payroll.PayrollResponse{ID: "p-1", Status: payroll.StatusApproved}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/p-1/payslip", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	t.Run("redirects to stored file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		r := newPayrollRouter(svc, nil)

		url := "/files/payslips/payslip_202501_p-1.pdf"
		svc.EXPECT().GetByID(gomock.Any(), "p-1", currency.USD).Return(payroll.PayrollResponse{ID: "p-1", PayslipURL: &url}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls/p-1/payslip/download", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, url, w.Header().Get("Location"))
	})

	t.Run("not generated yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		r := newPayrollRouter(svc, nil)

		svc.EXPECT().GetByID(gomock.Any(), "p-1", currency.USD).Return(payroll.PayrollResponse{ID: "p-1"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payrolls/p-1/payslip/download", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayrollHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newPayrollRouter(svc, nil)

	svc.EXPECT().Delete(gomock.Any(), "p-1").Return(payrollerrors.ErrDeleteOnlyDraft)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/payrolls/p-1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
