package serviceyearerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidServiceYearID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف سجل الخدمة غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الموظف غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"صيغة التاريخ غير صالحة، المطلوب YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"تاريخ نهاية الخدمة يجب أن يكون بعد تاريخ بدايتها",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"حالة سجل الخدمة غير صالحة",
		http.StatusBadRequest,
	)
	ErrEndDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"تاريخ نهاية الخدمة مطلوب للسجل المنتهي",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrServiceYearNotFound = apperror.New(
		apperror.CodeNotFound,
		"سجل الخدمة غير موجود",
		http.StatusNotFound,
	)
	ErrServiceYearExists = apperror.New(
		apperror.CodeConflict,
		"يوجد سجل خدمة لهذا الموظف بنفس تاريخ البداية",
		http.StatusConflict,
	)
)
