package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bootcamp-api/pkg/logger"
)

// Middleware is the fiber error handler. Every error that leaves a route is
// logged once here and written as a JSON body.
func Middleware(ctx *fiber.Ctx, err error) error {
	cerr := toCustomError(err)

	log := logger.FromContext(ctx.Context()).Desugar()
	log.Log(cerr.LogSeverity, cerr.LogMessage, cerr.LogFields...)

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(cerr.Response())
}

func toCustomError(err error) *CustomError {
	var cerr *CustomError
	if errors.As(err, &cerr) {
		return cerr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return NewError(fiberErr.Code, fiberErr.Message).SetSeverity(zapcore.WarnLevel)
	}

	return DependencyError("unhandled error").WithFields(zap.Error(err))
}
