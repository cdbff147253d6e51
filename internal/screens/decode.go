package screens

import (
	"encoding/json"

	"churchconnect/internal/models"
	"churchconnect/internal/validation"
)

// decodeRequest unmarshals and validates a form body, then converts it.
func decodeRequest[R any, T any](body []byte, convert func(R) T) (T, error) {
	var zero T
	var req R
	if err := json.Unmarshal(body, &req); err != nil {
		return zero, models.NewFieldError("body", "must be a valid JSON object")
	}
	if err := validation.GetValidator().Struct(req); err != nil {
		return zero, err
	}
	return convert(req), nil
}

// decodePatch applies a validated partial form to current.
func decodePatch[P any, T any](current T, body []byte, apply func(P, T) T) (T, error) {
	var zero T
	var patch P
	if err := json.Unmarshal(body, &patch); err != nil {
		return zero, models.NewFieldError("body", "must be a valid JSON object")
	}
	if err := validation.GetValidator().Struct(patch); err != nil {
		return zero, err
	}
	return apply(patch, current), nil
}
