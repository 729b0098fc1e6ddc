package validator

import (
	"fmt"
	"strings"

	"homegate/pkg/logger"
	"homegate/pkg/model"
	"homegate/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

func (v ValidationErrors) Fields() map[string]any {
	fields := make(map[string]any, len(v))
	for _, err := range v {
		fields[err.Field] = err.Message
	}
	return fields
}

// FormValidator checks user-submitted forms locally before anything is sent
// to the remote API. A form that fails here never leaves the gateway.
type FormValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func New(log *logger.Logger) *FormValidator {
	return &FormValidator{
		validate: validator.New(),
		log:      log,
	}
}

func (fv *FormValidator) collect(err error) error {
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "form", Message: err.Error()}}
	}

	var errs ValidationErrors
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "e164":
		return "must be an international phone number like +2348012345678"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

func (fv *FormValidator) ValidateSignup(form *model.SignupRequest) error {
	form.Name = sanitizer.NormalizeName(form.Name)
	form.Email = sanitizer.NormalizeEmail(form.Email)
	return fv.collect(fv.validate.Struct(form))
}

func (fv *FormValidator) ValidateLogin(form *model.LoginRequest) error {
	form.Email = sanitizer.NormalizeEmail(form.Email)
	return fv.collect(fv.validate.Struct(form))
}

func (fv *FormValidator) ValidateBookingRequest(form *model.BookingRequest) error {
	form.Message = sanitizer.TrimAndNormalize(form.Message)
	return fv.collect(fv.validate.Struct(form))
}

func (fv *FormValidator) ValidateAgentApplication(form *model.AgentApplication) error {
	form.Agency = sanitizer.TrimAndNormalize(form.Agency)
	form.Specialization = sanitizer.TrimAndNormalize(form.Specialization)
	form.Bio = sanitizer.TrimAndNormalize(form.Bio)
	form.Phone = sanitizer.NormalizePhone(form.Phone)
	return fv.collect(fv.validate.Struct(form))
}

func (fv *FormValidator) ValidateProperty(form *model.Property) error {
	form.Title = sanitizer.TrimAndNormalize(form.Title)
	form.Address = sanitizer.TrimAndNormalize(form.Address)
	form.Description = sanitizer.TrimAndNormalize(form.Description)
	return fv.collect(fv.validate.Struct(form))
}

func (fv *FormValidator) ValidateReview(form *model.Review) error {
	form.Comment = sanitizer.TrimAndNormalize(form.Comment)
	return fv.collect(fv.validate.Struct(form))
}
