package evaluationerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidEvaluationID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف التقييم غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"معرف الموظف غير صالح",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"فترة التقييم يجب أن تكون سنة بصيغة YYYY",
		http.StatusBadRequest,
	)
	ErrInvalidScore = apperror.New(
		apperror.CodeInvalidInput,
		"الدرجة يجب أن تكون بين 0 و 100",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"الموظف غير موجود",
		http.StatusNotFound,
	)
	ErrEvaluationNotFound = apperror.New(
		apperror.CodeNotFound,
		"التقييم غير موجود",
		http.StatusNotFound,
	)
	ErrEvaluationExists = apperror.New(
		apperror.CodeConflict,
		"يوجد تقييم لهذا الموظف في نفس الفترة",
		http.StatusConflict,
	)
)
