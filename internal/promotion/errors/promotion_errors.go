package promotionerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف المستخدم غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidPromotionID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الترقية غير صالح",
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
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"الفئة الوظيفية غير موجودة",
		http.StatusBadRequest,
	)
	ErrSameCategory = apperror.New(
		apperror.CodeInvalidInput,
		"الفئة الجديدة يجب أن تختلف عن الفئة الحالية",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"حالة الترقية غير صالحة",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrPromotionNotFound = apperror.New(
		apperror.CodeNotFound,
		"الترقية غير موجودة",
		http.StatusNotFound,
	)
	ErrOnlyPendingEditable = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكن تعديل الترقية بعد البت فيها",
		http.StatusBadRequest,
	)
)
