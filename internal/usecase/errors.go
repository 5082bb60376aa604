package usecase

import (
	"strings"

	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/validation"
)

func validationError(err error) error {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}
