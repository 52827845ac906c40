package server

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bootcamp-api/pkg/cerror"
)

var validate = validator.New()

// BindBody parses the request body into payload and validates its tags.
func BindBody(ctx *fiber.Ctx, payload interface{}) error {
	err := ctx.BodyParser(payload)
	if err != nil {
		return cerror.ValidationError("malformed request body").
			WithFields(zap.Error(err))
	}

	return Validate(payload)
}

func Validate(payload interface{}) error {
	err := validate.Struct(payload)
	if err != nil {
		return cerror.ValidationError(validationMessage(err)).
			WithFields(zap.Error(err))
	}

	return nil
}

func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "malformed request body"
	}

	fieldError := validationErrors[0]
	switch fieldError.Tag() {
	case "required":
		return "please add a " + fieldError.Field()
	case "email":
		return "please add a valid email"
	case "oneof":
		return fieldError.Field() + " must be one of " + fieldError.Param()
	default:
		return fieldError.Field() + " is invalid"
	}
}
