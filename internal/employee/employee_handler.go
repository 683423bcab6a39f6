package employee

import (
	"net/http"
	"sort"
	"strings"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/export"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.RememberIdempotent(c, h.rdb, http.StatusCreated, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func searchFields(e EmployeeResponse) []string {
	return []string{e.EmployeeNumber, e.FullName, e.NationalID, e.Email, e.Phone, e.Department, e.JobTitle, e.Status}
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http get all employees")

	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp = response.Search(c, resp, searchFields)

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "employee_number")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}
	sort.SliceStable(resp, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "name":
			less = resp[i].FullName < resp[j].FullName
		case "hire_date":
			less = resp[i].HireDate < resp[j].HireDate
		default:
			less = resp[i].EmployeeNumber < resp[j].EmployeeNumber
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, meta := response.Page(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	targetID := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", targetID))

	resp, err := h.service.GetByID(c.Request.Context(), targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", id))
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Export(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp = response.Search(c, resp, searchFields)

	if err := export.Send(c, "employees", c.DefaultQuery("format", export.FormatCSV), exportTable(resp)); err != nil {
		h.writeServiceError(c, err)
	}
}

func exportTable(employees []EmployeeResponse) export.Table {
	t := export.Table{
		Headers: []string{"الرقم الوظيفي", "الاسم الكامل", "الرقم الوطني", "البريد الإلكتروني", "الهاتف", "القسم", "المسمى الوظيفي", "الفئة", "تاريخ التعيين", "الحالة"},
		Rows:    make([][]string, 0, len(employees)),
	}
	for _, e := range employees {
		t.Rows = append(t.Rows, []string{
			e.EmployeeNumber, e.FullName, e.NationalID, e.Email, e.Phone,
			e.Department, e.JobTitle, e.SalaryCategory, e.HireDate, e.Status,
		})
	}
	return t
}
