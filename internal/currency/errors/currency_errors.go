package currencyerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"المبلغ غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidRateOverride = apperror.New(
		apperror.CodeInvalidInput,
		"سعر الصرف يجب أن يكون رقماً موجباً",
		http.StatusBadRequest,
	)
	ErrUnsupportedCurrency = apperror.New(
		apperror.CodeInvalidInput,
		"العملة غير مدعومة، القيم المسموحة USD أو TRY",
		http.StatusBadRequest,
	)
	ErrUnsupportedPair = apperror.New(
		apperror.CodeInvalidInput,
		"زوج العملات غير مدعوم",
		http.StatusBadRequest,
	)
)
