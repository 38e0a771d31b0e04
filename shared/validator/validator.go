package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"bookspace/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Decode reads JSON from r into data and validates the result. Shape
// mismatches are reported as *failure.InvalidResponse for source.
// https://github.com/go-playground/validator
func Decode(r io.Reader, source string, data any) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return &failure.InvalidResponse{Path: source, Reason: fmt.Sprintf("decode body: %v", err)}
	}

	if err := validate.Struct(data); err != nil {
		return &failure.InvalidResponse{Path: source, Reason: message(err)}
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
