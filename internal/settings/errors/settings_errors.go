package settingserrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidAuthMode = apperror.New(
		apperror.CodeInvalidInput,
		"نوع المصادقة يجب أن يكون windows أو sql",
		http.StatusBadRequest,
	)
	ErrCredentialsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"اسم المستخدم وكلمة المرور مطلوبان عند استخدام مصادقة SQL",
		http.StatusBadRequest,
	)
	ErrSettingsUnreadable = apperror.New(
		apperror.CodeInternalError,
		"تعذر قراءة ملف إعدادات الاتصال",
		http.StatusInternalServerError,
	)
	ErrSettingsNotSaved = apperror.New(
		apperror.CodeInternalError,
		"تعذر حفظ إعدادات الاتصال",
		http.StatusInternalServerError,
	)
)
