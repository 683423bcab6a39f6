package employee

import (
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return employeeerrors.ErrEmployeeNotFound
	case dberr.IsUniqueViolation(err, "uq_employee_number"):
		return employeeerrors.ErrEmployeeNumberAlreadyExists
	case dberr.IsUniqueViolation(err, "uq_employee_email"):
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
