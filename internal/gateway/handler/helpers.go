package handler

import (
	"errors"

	"homegate/internal/gateway/validator"
	apperrors "homegate/pkg/errors"
)

// validationError maps form-level failures onto the 422 error shape so every
// handler reports field problems the same way.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return apperrors.Validation("Validation failed", fieldErrs.Fields())
	}
	return apperrors.InvalidInput(err.Error())
}
