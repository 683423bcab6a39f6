package rbacerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrUnknownRole = apperror.New(
		apperror.CodeNotFound,
		"الدور غير موجود",
		http.StatusNotFound,
	)
	ErrInvalidPermission = apperror.New(
		apperror.CodeInvalidInput,
		"صيغة الصلاحية غير صالحة، المطلوب مورد:إجراء",
		http.StatusBadRequest,
	)
	ErrAdminLocked = apperror.New(
		apperror.CodeInvalidState,
		"لا يمكن تعديل صلاحيات دور المدير",
		http.StatusBadRequest,
	)
)
