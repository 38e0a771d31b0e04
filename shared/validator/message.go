package validator

import (
	"errors"
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "%s is required",
	"gt":       "%s must be greater than %s",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
	"min":      "%s must be at least %s",
	"max":      "%s must be at most %s",
	"oneof":    "%s must be one of [%s]",
	"url":      "%s must be a valid URL",
}

// message flattens validation failures into one line, one clause per field,
// each named by its path below the root struct (Data[0].Name).
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	clauses := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		clauses = append(clauses, describe(fieldErr))
	}

	return strings.Join(clauses, "; ")
}

func describe(fieldErr val.FieldError) string {
	path := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	tmpl, ok := templates[fieldErr.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed the %s check", path, fieldErr.Tag())
	}

	if strings.Count(tmpl, "%s") == 1 {
		return fmt.Sprintf(tmpl, path)
	}

	return fmt.Sprintf(tmpl, path, fieldErr.Param())
}
