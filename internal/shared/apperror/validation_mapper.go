package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// hire_date -> Hire Date
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a binding error into an INVALID_INPUT AppError.
// The message names the first failing field; Details lists every field so the
// client can mark each input.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make(map[string]string, len(errs))
		for _, fe := range errs {
			fields[fe.Field()] = fieldMessage(fe)
		}

		first := errs[0]
		var appErr *AppError
		if first.Tag() == "required" {
			appErr = RequiredField(formatFieldName(first.Field()))
		} else {
			appErr = InvalidField(formatFieldName(first.Field()))
		}
		return appErr.WithDetails(fields)
	}

	return New(
		CodeInvalidInput,
		"صيغة البيانات غير صالحة",
		http.StatusBadRequest,
	).WithDetails(err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	name := formatFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " مطلوب"
	case "email":
		return name + " يجب أن يكون بريداً إلكترونياً صالحاً"
	case "uuid":
		return name + " يجب أن يكون معرفاً صالحاً"
	case "oneof":
		return name + " يجب أن يكون إحدى القيم: " + fe.Param()
	case "min", "gte":
		return name + " يجب ألا يقل عن " + fe.Param()
	case "max", "lte":
		return name + " يجب ألا يزيد عن " + fe.Param()
	default:
		return name + " غير صالح"
	}
}
