package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"السجل غير موجود",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"ليس لديك صلاحية للوصول إلى هذا المورد",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"حدث خطأ غير متوقع، يرجى المحاولة مرة أخرى",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"يجب تسجيل الدخول أولاً",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"البيانات المدخلة غير صالحة",
		http.StatusBadRequest,
	)

	ErrServiceUnavailable = New(
		CodeServiceUnavailable,
		"الخدمة غير متاحة حالياً",
		http.StatusServiceUnavailable,
	)
)

// RequiredField builds the per-field "required" message shown next to a form input.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" مطلوب", http.StatusBadRequest)
}

// InvalidField builds the per-field "invalid" message shown next to a form input.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" غير صالح", http.StatusBadRequest)
}
