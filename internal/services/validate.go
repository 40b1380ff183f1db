package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/alex005489465/MeowManager/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names (e.g. productId rather than ProductID)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// validateRequest checks a request against the constraints the backend enforces.
// Violations are returned as a VALIDATION_ERROR business error, the same shape the backend would answer with.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewBusinessError(fmt.Sprintf("invalid request: %v", err), apperrors.ErrCodeValidationError)
	}

	problems := make([]string, 0, len(errs))
	for _, fe := range errs {
		problems = append(problems, fmt.Sprintf("%s %s", fe.Field(), validationMessage(fe)))
	}
	return apperrors.NewBusinessError("invalid request: "+strings.Join(problems, "; "), apperrors.ErrCodeValidationError)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "email":
		return "must be a valid email"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	}
	return "is invalid"
}
