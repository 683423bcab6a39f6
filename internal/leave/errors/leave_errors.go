package leaveerrors

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
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الموظف غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الإجازة غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"صيغة التاريخ غير صالحة، المطلوب YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"تاريخ البداية يجب أن يسبق تاريخ النهاية أو يساويه",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"نوع الإجازة غير صالح",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"توجد إجازة أخرى لهذا الموظف في فترة متداخلة",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"الإجازة غير موجودة",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكن تغيير حالة الإجازة إلا إذا كانت قيد الانتظار",
		http.StatusBadRequest,
	)
	ErrOnlyPendingEditable = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكن تعديل الإجازة بعد البت فيها",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"سبب الرفض مطلوب",
		http.StatusBadRequest,
	)
)
