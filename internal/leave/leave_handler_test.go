package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	leave.Service
	createFn func(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn func(ctx context.Context, status string) ([]leave.LeaveResponse, error)
	rejectFn func(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error)
	cancelFn func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, actorID, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx, status)
}
func (f *fakeLeaveService) Reject(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, actorID, id, rejectionReason)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.cancelFn(ctx, actorID, id)
}

func newLeaveRouter(svc leave.Service, actorID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", actorID)
		c.Next()
	})
	h := leave.NewHandler(svc)
	r.GET("/leaves", h.GetAll)
	r.POST("/leaves", h.Create)
	r.POST("/leaves/:id/reject", h.Reject)
	r.POST("/leaves/:id/cancel", h.Cancel)
	return r
}

func TestLeaveHandler_Create(t *testing.T) {
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success passes actor", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, gotActor string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, actorID, gotActor)
				assert.Equal(t, leave.TypeAnnual, req.LeaveType)
				return leave.LeaveResponse{ID: "l-1", Status: leave.StatusPending, TotalDays: 3}, nil
			},
		}
		r := newLeaveRouter(svc, actorID)

		body := `{"employee_id":"` + employeeID + `","leave_type":"سنوية","start_date":"2026-03-01","end_date":"2026-03-03"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("missing employee", func(t *testing.T) {
		r := newLeaveRouter(&fakeLeaveService{}, actorID)

		body := `{"leave_type":"سنوية","start_date":"2026-03-01","end_date":"2026-03-03"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("overlap conflict", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, gotActor string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap
			},
		}
		r := newLeaveRouter(svc, actorID)

		body := `{"employee_id":"` + employeeID + `","leave_type":"سنوية","start_date":"2026-03-01","end_date":"2026-03-03"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, leaveerrors.ErrLeaveOverlap.Message, env.Error.Message)
	})
}

func TestLeaveHandler_GetAll_StatusFilter(t *testing.T) {
	svc := &fakeLeaveService{
		getAllFn: func(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
			assert.Equal(t, leave.StatusPending, status)
			return []leave.LeaveResponse{{ID: "l-1"}, {ID: "l-2"}}, nil
		},
	}
	r := newLeaveRouter(svc, uuid.New().String())

	req := httptest.NewRequest(http.MethodGet, "/leaves", nil)
	q := req.URL.Query()
	q.Set("status", leave.StatusPending)
	req.URL.RawQuery = q.Encode()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestLeaveHandler_Reject(t *testing.T) {
	actorID := uuid.New().String()

	t.Run("reason required by binding", func(t *testing.T) {
		r := newLeaveRouter(&fakeLeaveService{}, actorID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/reject", bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			rejectFn: func(ctx context.Context, gotActor, id, reason string) (leave.LeaveResponse, error) {
				assert.Equal(t, "l-1", id)
				assert.Equal(t, "ضغط العمل", reason)
				return leave.LeaveResponse{ID: id, Status: leave.StatusRejected, RejectionReason: &reason}, nil
			},
		}
		r := newLeaveRouter(svc, actorID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/reject", bytes.NewBufferString(`{"rejection_reason":"ضغط العمل"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_Cancel_InvalidState(t *testing.T) {
	svc := &fakeLeaveService{
		cancelFn: func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
		},
	}
	r := newLeaveRouter(svc, uuid.New().String())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/l-1/cancel", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}
