package store

import (
	"errors"
	"reflect"
	"strings"

	"delivery-app/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so errors match what clients send.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// normalizeDetails trims every field.
func normalizeDetails(d models.CustomerDetails) models.CustomerDetails {
	return models.CustomerDetails{
		Name:           strings.TrimSpace(d.Name),
		Phone:          strings.TrimSpace(d.Phone),
		Address:        strings.TrimSpace(d.Address),
		AdditionalInfo: strings.TrimSpace(d.AdditionalInfo),
	}
}

// ValidateDetails checks that name, phone and address are present after trimming.
func ValidateDetails(d models.CustomerDetails) error {
	err := validate.Struct(normalizeDetails(d))
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return &IncompleteProfileError{Fields: missing}
}
