package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validator tags on v and flattens the result into a
// field -> message map (empty map when valid). Field names follow the json
// convention used on the wire (leading lowercase).
func ValidateStruct(v interface{}) map[string]string {
	fieldErrs := map[string]string{}

	err := validate.Struct(v)
	if err == nil {
		return fieldErrs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrs["_"] = err.Error()
		return fieldErrs
	}

	for _, fe := range verrs {
		fieldErrs[jsonFieldName(fe.Field())] = messageFor(fe)
	}
	return fieldErrs
}

func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func messageFor(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
