package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/auction-display-service/internal/model"
)

const defaultLimit = 50

var validate = newValidator()

// newValidator reports fields by their JSON names so field errors match the wire format.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func normalizePage(p model.Page) model.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return model.Page{Limit: limit, Offset: offset}
}

// structFieldErrors runs struct validation and flattens failures into FieldErrors
// named prefix.json_field.
func structFieldErrors(prefix string, v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: prefix, Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if prefix != "" {
			name = prefix + "." + name
		}
		out = append(out, FieldError{Field: name, Message: validationMessage(fe)})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be set"
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
