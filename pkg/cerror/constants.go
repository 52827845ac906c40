package cerror

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

const (
	KindValidation            Kind = "ValidationError"
	KindDuplicateEmail        Kind = "DuplicateEmail"
	KindInvalidCredentials    Kind = "InvalidCredentials"
	KindUnauthenticated       Kind = "Unauthenticated"
	KindForbidden             Kind = "Forbidden"
	KindNotFound              Kind = "NotFound"
	KindInvalidOrExpiredToken Kind = "InvalidOrExpiredToken"
	KindGeocodingFailed       Kind = "GeocodingFailed"
	KindEmailDeliveryFailed   Kind = "EmailDeliveryFailed"
	KindDependency            Kind = "DependencyError"
	KindRateLimited           Kind = "RateLimited"
)

func kindForStatus(httpStatusCode int) Kind {
	switch httpStatusCode {
	case fiber.StatusBadRequest:
		return KindValidation
	case fiber.StatusUnauthorized:
		return KindUnauthenticated
	case fiber.StatusForbidden:
		return KindForbidden
	case fiber.StatusNotFound:
		return KindNotFound
	case fiber.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindDependency
	}
}

func ValidationError(message string) *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		Kind:           KindValidation,
		Message:        message,
		LogMessage:     message,
		LogSeverity:    zapcore.WarnLevel,
	}
}

func DuplicateEmail() *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		Kind:           KindDuplicateEmail,
		Message:        "email is already registered",
		LogMessage:     "user with email already exists",
		LogSeverity:    zapcore.WarnLevel,
	}
}

func InvalidCredentials() *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Kind:           KindInvalidCredentials,
		Message:        "invalid credentials",
		LogMessage:     "invalid credentials",
		LogSeverity:    zapcore.WarnLevel,
	}
}

func Unauthenticated() *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Kind:           KindUnauthenticated,
		Message:        "not authorized to access this route",
		LogMessage:     "request is not authenticated",
		LogSeverity:    zapcore.WarnLevel,
	}
}

func Forbidden(message string) *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusForbidden,
		Kind:           KindForbidden,
		Message:        message,
		LogMessage:     message,
		LogSeverity:    zapcore.WarnLevel,
	}
}

func NotFound(resource, id string) *CustomError {
	message := fmt.Sprintf("%s not found with id of %s", resource, id)
	return &CustomError{
		HttpStatusCode: fiber.StatusNotFound,
		Kind:           KindNotFound,
		Message:        message,
		LogMessage:     message,
		LogSeverity:    zapcore.WarnLevel,
	}
}

func InvalidOrExpiredToken() *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		Kind:           KindInvalidOrExpiredToken,
		Message:        "invalid or expired token",
		LogMessage:     "reset token did not match or has expired",
		LogSeverity:    zapcore.WarnLevel,
	}
}

func GeocodingFailed(location string) *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		Kind:           KindGeocodingFailed,
		Message:        fmt.Sprintf("could not resolve location %s", location),
		LogMessage:     "geocoder returned no result",
		LogSeverity:    zapcore.WarnLevel,
	}
}

func EmailDeliveryFailed() *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		Kind:           KindEmailDeliveryFailed,
		Message:        "email could not be sent",
		LogMessage:     "error occurred while dispatch email",
		LogSeverity:    zapcore.ErrorLevel,
	}
}

// DependencyError hides the log message from the client.
func DependencyError(logMessage string) *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		Kind:           KindDependency,
		Message:        "internal server error",
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
	}
}

func RateLimited() *CustomError {
	return &CustomError{
		HttpStatusCode: fiber.StatusTooManyRequests,
		Kind:           KindRateLimited,
		Message:        "too many requests, please try again later",
		LogMessage:     "client exceeded request rate",
		LogSeverity:    zapcore.WarnLevel,
	}
}
