package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/store"
)

var (
	dateRgx  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRgx = regexp.MustCompile(`^\d{2}:\d{2}$`)
	cardRgx  = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{4}$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("showdate", validateShowDate)
	validator.RegisterValidation("showclock", validateShowClock)
	validator.RegisterValidation("nosep", validateNoSeparator)
	validator.RegisterValidation("payment", validatePaymentMethod)
	validator.RegisterValidation("card", validateCardNumber)

	return validator
}

// validateShowDate accepts calendar dates in YYYY-MM-DD form only; 2024-02-31
// fails even though it matches the shape.
func validateShowDate(fl validator.FieldLevel) bool {
	date := fl.Field().String()

	if !dateRgx.MatchString(date) {
		return false
	}

	_, err := time.Parse(domain.DateLayout, date)
	return err == nil
}

func validateShowClock(fl validator.FieldLevel) bool {
	clock := fl.Field().String()

	if !clockRgx.MatchString(clock) {
		return false
	}

	_, err := time.Parse(domain.ClockLayout, clock)
	return err == nil
}

// validateNoSeparator rejects values that would corrupt the delimited row
// layout: blank after trimming, or containing the store delimiter.
func validateNoSeparator(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	return strings.TrimSpace(value) != "" && !strings.Contains(value, store.Delimiter)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	method, ok := fl.Field().Interface().(domain.PaymentMethod)
	if !ok {
		return false
	}

	return method == domain.PaymentCash || method == domain.PaymentCard
}

func validateCardNumber(fl validator.FieldLevel) bool {
	return cardRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "showdate":
		return "must be a valid date in YYYY-MM-DD format"
	case "showclock":
		return "must be a valid time in HH:MM format"
	case "nosep":
		return "must be non-empty and must not contain a comma"
	case "excludesall":
		return "must not contain a comma"
	case "payment":
		return "must be Cash or Card"
	case "card":
		return "must match XXXX-XXXX-XXXX-XXXX"
	default:
		return "is invalid"
	}
}

// ToValidationError converts a validator.ValidationErrors into the domain's
// discriminated validation failure. Other errors pass through unchanged.
func ToValidationError(err error) error {
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		violations[fieldErr.Field()] = ValidationMessage(fieldErr)
	}

	return &domain.ValidationError{Violations: violations}
}
