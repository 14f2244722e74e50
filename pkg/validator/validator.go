// Package validator wraps go-playground struct validation for the request
// types that carry `validate` tags.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse describes a single failed field in a terse, loggable form.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Param       string
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// uuid_required rejects the zero UUID, which BodyParser leaves behind
	// when a product reference is missing from the payload.
	_ = v.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
	return v
}

// ValidateStruct runs the tag rules on data and flattens the failures.
// A nil result means the struct passed.
func ValidateStruct(data interface{}) []*ErrorResponse {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var out []*ErrorResponse
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, &ErrorResponse{
			FailedField: fe.StructNamespace(),
			Tag:         fe.Tag(),
			Param:       fe.Param(),
		})
	}
	return out
}
