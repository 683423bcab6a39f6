package absence

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	absenceerrors "go-hrms/internal/absence/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	Service
	createFn func(ctx context.Context, req AbsenceRequest) (AbsenceResponse, error)
	getAllFn func(ctx context.Context, filter AbsenceFilter) ([]AbsenceResponse, error)
}

func (f *fakeService) Create(ctx context.Context, req AbsenceRequest) (AbsenceResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeService) GetAll(ctx context.Context, filter AbsenceFilter) ([]AbsenceResponse, error) {
	return f.getAllFn(ctx, filter)
}

func TestHandler_Create_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{
		createFn: func(ctx context.Context, req AbsenceRequest) (AbsenceResponse, error) {
			return AbsenceResponse{}, absenceerrors.ErrAbsenceExists
		},
	}
	r := gin.New()
	r.POST("/absences", NewHandler(svc).Create)

	body := `{"employee_id":"` + uuid.New().String() + `","absence_date":"2026-05-04","absence_type":"تأخير","hours":1.5}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/absences", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestHandler_Export_RowCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{
		getAllFn: func(ctx context.Context, filter AbsenceFilter) ([]AbsenceResponse, error) {
			assert.Equal(t, "2026-05", filter.Month)
			return []AbsenceResponse{
				{EmployeeName: "EMP-000001 - علي", AbsenceDate: "2026-05-04", AbsenceType: TypeLate, Hours: decimal.RequireFromString("1.5"), Status: StatusRecorded},
				{EmployeeName: "EMP-000002 - منى", AbsenceDate: "2026-05-05", AbsenceType: TypeExcused, Status: StatusJustified, Notes: "موعد \"طبي\""},
				{EmployeeName: "EMP-000003 - ليلى", AbsenceDate: "2026-05-06", AbsenceType: TypeUnexcused, Status: StatusDeducted},
			}, nil
		},
	}
	r := gin.New()
	r.GET("/absences/export", NewHandler(svc).Export)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/absences/export?month=2026-05", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, w.Body.String(), `"موعد ""طبي"""`)
}
