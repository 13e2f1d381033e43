package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kenjummy/booking-api/internal/apperr"
)

// Validator checks request DTOs and turns every failed rule into a
// field-level message, joined into a single 400 "Invalid input: ..." error.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{v: v}
}

func (va *Validator) Check(s interface{}) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return apperr.New(fiber.StatusBadRequest, "Invalid input: "+strings.Join(msgs, ", "))
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "fullName":
		switch fe.Tag() {
		case "required":
			return "Full name is required"
		case "min":
			if fe.Param() == "2" {
				return "Full name must be at least 2 characters"
			}
			return "Full name must be between 3 and 100 characters"
		case "max":
			return "Full name must be between 3 and 100 characters"
		}
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Invalid email address"
	case "phone":
		switch fe.Tag() {
		case "required":
			return "Phone number is required"
		case "min":
			return "Phone number must be at least 10 digits"
		default:
			return "Invalid phone number"
		}
	case "password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be at least 8 characters long"
	case "serviceType":
		return "Invalid service type. Must be one of: charter, intercity, vip, hire."
	case "status":
		return "Invalid status. Must be one of: pending, confirmed, completed, cancelled."
	case "isActive":
		return "isActive is required"
	}
	return fe.Field() + " is invalid"
}
