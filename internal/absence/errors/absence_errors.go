package absenceerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidAbsenceID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الغياب غير صالح",
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
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"صيغة الشهر غير صالحة، المطلوب YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidAbsenceType = apperror.New(
		apperror.CodeInvalidInput,
		"نوع الغياب غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"حالة الغياب غير صالحة",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"عدد الساعات غير صالح",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrAbsenceNotFound = apperror.New(
		apperror.CodeNotFound,
		"سجل الغياب غير موجود",
		http.StatusNotFound,
	)
	ErrAbsenceExists = apperror.New(
		apperror.CodeConflict,
		"يوجد سجل غياب لهذا الموظف في نفس اليوم",
		http.StatusConflict,
	)
)
