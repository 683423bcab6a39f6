package serviceyear

import (
	serviceyearerrors "go-hrms/internal/serviceyear/errors"
	"go-hrms/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return serviceyearerrors.ErrServiceYearNotFound
	case dberr.IsUniqueViolation(err, "uq_service_year_employee_start"):
		return serviceyearerrors.ErrServiceYearExists
	}

	return err
}
