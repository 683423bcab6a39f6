package employee_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	employeeMock "go-hrms/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := employee.NewHandler(svc, nil)
	r.GET("/employees", h.GetAll)
	r.GET("/employees/export", h.Export)
	r.GET("/employees/:id", h.GetByID)
	r.POST("/employees", h.Create)
	r.DELETE("/employees/:id", h.Delete)
	return r
}

func sampleEmployees() []employee.EmployeeResponse {
	return []employee.EmployeeResponse{
		{ID: "2", EmployeeNumber: "EMP-000002", FullName: "ليلى حسن", Email: "layla@example.com", HireDate: "2018-09-15", Status: employee.StatusActive},
		{ID: "1", EmployeeNumber: "EMP-000001", FullName: "أحمد خليل", Email: "ahmad@example.com", HireDate: "2020-03-01", Status: employee.StatusActive},
		{ID: "3", EmployeeNumber: "EMP-000003", FullName: "Kerem, Yilmaz", Email: "kerem@example.com", HireDate: "2022-01-10", Status: employee.StatusSuspended},
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(employee.EmployeeResponse{ID: "1", EmployeeNumber: "EMP-000001"}, nil)

		body := `{"full_name":"أحمد خليل","email":"ahmad@example.com","hire_date":"2020-03-01"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "EMP-000001")
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		r := setupRouter(svc)

		body := `{"full_name":"أحمد خليل","hire_date":"2020-03-01"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "مطلوب")
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists)

		body := `{"full_name":"أحمد خليل","email":"ahmad@example.com","hire_date":"2020-03-01"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("sorted by employee number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().GetAll(gomock.Any()).Return(sampleEmployees(), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Less(t, strings.Index(body, "EMP-000001"), strings.Index(body, "EMP-000002"))
		assert.Contains(t, body, `"total":3`)
	})

	t.Run("search by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		r := setupRouter(svc)

		svc.EXPECT().GetAll(gomock.Any()).Return(sampleEmployees(), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?q=kerem", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})
}

func TestEmployeeHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().GetAll(gomock.Any()).Return(sampleEmployees(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/export?format=csv", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "employees-")

	body := strings.TrimPrefix(w.Body.String(), "\xEF\xBB\xBF")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Len(t, lines, len(sampleEmployees())+1)
	assert.Contains(t, body, `"Kerem, Yilmaz"`)
}

func TestEmployeeHandler_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().GetByID(gomock.Any(), "missing").Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	r := setupRouter(svc)

	svc.EXPECT().Delete(gomock.Any(), "1").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
