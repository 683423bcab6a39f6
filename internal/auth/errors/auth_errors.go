package autherrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"اسم المستخدم أو كلمة المرور غير صحيحة",
		http.StatusUnauthorized,
	)
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"رمز الدخول غير موجود",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"رمز الدخول غير صالح",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"انتهت صلاحية رمز الدخول",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"ليس لديك صلاحية للوصول إلى هذا المورد",
		http.StatusForbidden,
	)
	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"حساب المستخدم غير مفعل",
		http.StatusForbidden,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"المستخدم غير موجود",
		http.StatusNotFound,
	)
)
