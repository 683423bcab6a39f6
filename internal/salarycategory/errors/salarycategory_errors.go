package salarycategoryerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var ErrCategoryNotFound = apperror.New(
	apperror.CodeInvalidInput,
	"فئة الراتب غير موجودة",
	http.StatusBadRequest,
)
