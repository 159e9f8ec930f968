package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type cityNameRequest struct {
	CityName string `validate:"required,alpha"`
}

// ValidateCityName accepts only non-empty ASCII letter strings.
func ValidateCityName(name string) error {
	err := validate.Struct(cityNameRequest{CityName: name})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Detail: err.Error()}
	}

	switch fieldErrs[0].Tag() {
	case "required":
		return &ValidationError{Detail: "city_name is required"}
	default:
		return &ValidationError{Detail: "city_name must only contain alphabetic characters"}
	}
}
