package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/groupdir/backend/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their json names so error messages match the
	// wire payload.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Let the "required" tag see models.Date as a plain time value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(models.Date); ok {
			return d.Time
		}
		return nil
	}, models.Date{})

	return v
}

// CreateUserRequest is the payload schema for user creation: every field
// is required and sex is a closed enumeration.
type CreateUserRequest struct {
	Name      string      `json:"name" validate:"required"`
	Surname   string      `json:"surname" validate:"required"`
	BirthDate models.Date `json:"birth_date" validate:"required"`
	Sex       models.Sex  `json:"sex" validate:"required,oneof=male female other"`
}

func (r CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// User converts the validated payload into the model handed to the
// domain layer.
func (r CreateUserRequest) User() models.User {
	return models.User{
		Name:      r.Name,
		Surname:   r.Surname,
		BirthDate: r.BirthDate,
		Sex:       r.Sex,
	}
}

// UpdateUserRequest has the same field rules as creation, but every
// field is optional. An empty payload is valid and requests no change.
type UpdateUserRequest struct {
	Name      *string      `json:"name,omitempty" validate:"omitempty,min=1"`
	Surname   *string      `json:"surname,omitempty" validate:"omitempty,min=1"`
	BirthDate *models.Date `json:"birth_date,omitempty"`
	Sex       *models.Sex  `json:"sex,omitempty" validate:"omitempty,oneof=male female other"`
}

func (r UpdateUserRequest) Validate() error {
	return validate.Struct(r)
}

// Updates returns the column map for the fields actually present, so the
// store touches only those columns.
func (r UpdateUserRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Surname != nil {
		updates["surname"] = *r.Surname
	}
	if r.BirthDate != nil {
		updates["birth_date"] = *r.BirthDate
	}
	if r.Sex != nil {
		updates["sex"] = *r.Sex
	}
	return updates
}

// FirstError renders the first failed rule as a client-facing message
// naming the offending field.
func FirstError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "invalid request body"
	}

	first := validationErrors[0]
	field := first.Field()

	switch first.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, first.Param())
	case "min":
		if first.Type().Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, first.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, first.Param())
	default:
		if first.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, first.Tag(), first.Param())
		}
		return fmt.Sprintf("%s: %s", field, first.Tag())
	}
}
