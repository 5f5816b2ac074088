// Package validation provides request validation using the validator/v10 library.
package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/listenupapp/nameflags/internal/errors"
	"github.com/listenupapp/nameflags/internal/palette"
	"github.com/listenupapp/nameflags/internal/render"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our domain.
//
// Besides the built-in tags it understands:
//
//	flag_encoding     unicode | utf-8 (and aliases)
//	flag_adjustment   none | brighten | darken | saturate (and aliases)
//	flag_pattern      stripes | checkerboard | diagonal
//	flag_orientation  horizontal | vertical
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		for i := range len(name) {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	mustRegister(v, "flag_encoding", func(s string) error {
		_, err := palette.ParseEncoding(s)
		return err
	})
	mustRegister(v, "flag_adjustment", func(s string) error {
		_, err := palette.ParseAdjustmentKind(s)
		return err
	})
	mustRegister(v, "flag_pattern", func(s string) error {
		_, err := render.ParsePattern(s)
		return err
	})
	mustRegister(v, "flag_orientation", func(s string) error {
		_, err := render.ParseOrientation(s)
		return err
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, parse func(string) error) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return parse(fl.Field().String()) == nil
	})
	if err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// Validate validates a struct and returns a domain error.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// formatError converts validator errors to domain errors.
func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make(map[string]string)
	for _, e := range validationErrs {
		fieldErrors[e.Field()] = v.friendlyMessage(e)
	}

	return domainerrors.ValidationWithDetails("validation failed", fieldErrors)
}

func (v *Validator) friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "flag_encoding":
		return "must be one of: unicode, utf-8"
	case "flag_adjustment":
		return "must be one of: none, brighten, darken, saturate"
	case "flag_pattern":
		return "must be one of: stripes, checkerboard, diagonal"
	case "flag_orientation":
		return "must be one of: horizontal, vertical"
	default:
		return "is invalid"
	}
}
