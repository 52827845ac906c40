package logger

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ContextKey                = "logger"
	EventFinishedSuccessfully = "event successfully finished"
)

// Middleware stores a request scoped logger in fiber locals. Locals are
// readable through ctx.Context(), so FromContext works on the fasthttp context.
func Middleware(logger *zap.SugaredLogger) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		requestId := ctx.Get(fiber.HeaderXRequestID)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		ctx.Set(fiber.HeaderXRequestID, requestId)

		ctx.Locals(ContextKey, logger.With(
			zap.String("requestId", requestId),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
		))
		return ctx.Next()
	}
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, isOk := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !isOk {
		l, _ := zap.NewProduction()
		logger = l.Sugar()
	}

	return logger
}

func InjectContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, log) //nolint:staticcheck
}
