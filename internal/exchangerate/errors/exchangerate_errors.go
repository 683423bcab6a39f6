package exchangerateerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrRateNotFound = apperror.New(
		apperror.CodeNotFound,
		"سعر الصرف غير موجود",
		http.StatusNotFound,
	)
	ErrInvalidRateID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف سعر الصرف غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"سعر الصرف يجب أن يكون رقماً موجباً",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"صيغة التاريخ غير صالحة، المطلوب YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrActiveRateConflict = apperror.New(
		apperror.CodeConflict,
		"يوجد سعر صرف فعال آخر، أعد المحاولة",
		http.StatusConflict,
	)
)
