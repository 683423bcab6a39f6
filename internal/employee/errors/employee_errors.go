package employeeerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"يوجد موظف آخر بنفس البريد الإلكتروني",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"الرقم الوظيفي مستخدم مسبقاً",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الموظف غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"تاريخ التعيين غير صالح، المطلوب YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"حالة الموظف غير صالحة",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryCategory = apperror.New(
		apperror.CodeInvalidInput,
		"الفئة الوظيفية غير موجودة",
		http.StatusBadRequest,
	)
)
