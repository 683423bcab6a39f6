package rewarderrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidRewardID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف المكافأة غير صالح",
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
	ErrInvalidRewardType = apperror.New(
		apperror.CodeInvalidInput,
		"نوع المكافأة غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"حالة المكافأة غير صالحة",
		http.StatusBadRequest,
	)
	ErrAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"المبلغ مطلوب ويجب أن يكون أكبر من صفر للمكافأة المالية",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"المبلغ لا يمكن أن يكون سالباً",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrRewardNotFound = apperror.New(
		apperror.CodeNotFound,
		"المكافأة غير موجودة",
		http.StatusNotFound,
	)
)
