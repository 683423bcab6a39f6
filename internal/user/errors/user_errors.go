package usererrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"المستخدم غير موجود",
		http.StatusNotFound,
	)
	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"يوجد مستخدم بنفس البريد الإلكتروني",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف المستخدم غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"الدور غير صالح",
		http.StatusBadRequest,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"كلمة المرور الحالية غير صحيحة",
		http.StatusBadRequest,
	)
	ErrSelfDeactivation = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكنك تعطيل حسابك الخاص",
		http.StatusBadRequest,
	)
)
