package courseerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidCourseID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الدورة غير صالح",
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
		"تاريخ بداية الدورة يجب أن يسبق تاريخ نهايتها أو يساويه",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"حالة الدورة غير صالحة",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrCourseNotFound = apperror.New(
		apperror.CodeNotFound,
		"الدورة غير موجودة",
		http.StatusNotFound,
	)
)
