package payrollerrors

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
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف كشف الراتب غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الموظف غير صالح",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"صيغة التاريخ غير صالحة، المطلوب YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"صيغة الفترة غير صالحة، المطلوب YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"تاريخ بداية الفترة يجب أن يسبق تاريخ نهايتها أو يساويه",
		http.StatusBadRequest,
	)
	ErrPayrollOverlap = apperror.New(
		apperror.CodeConflict,
		"يوجد كشف راتب لهذا الموظف في فترة متداخلة",
		http.StatusConflict,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"كشف الراتب غير موجود",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكن تغيير حالة كشف الراتب بهذا الشكل",
		http.StatusBadRequest,
	)
	ErrRegenerateOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكن إعادة احتساب كشف الراتب إلا في حالة المسودة",
		http.StatusBadRequest,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكن حذف كشف الراتب إلا في حالة المسودة",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"لا يمكن أن تكون قيم الراتب سالبة",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"حالة كشف الراتب غير صالحة",
		http.StatusBadRequest,
	)
	ErrInvalidDisplayCurrency = apperror.New(
		apperror.CodeInvalidInput,
		"عملة العرض غير مدعومة، القيم المسموحة USD أو TRY",
		http.StatusBadRequest,
	)
	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"لم يتم إنشاء قسيمة الراتب بعد",
		http.StatusNotFound,
	)
	ErrPayslipRequiresApproval = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكن إصدار قسيمة الراتب قبل اعتماد كشف الراتب",
		http.StatusBadRequest,
	)
)
