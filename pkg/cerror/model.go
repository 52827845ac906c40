package cerror

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Kind string

type CustomError struct {
	HttpStatusCode int             `json:"httpStatus"`
	Kind           Kind            `json:"code"`
	Message        string          `json:"error"`
	LogMessage     string          `json:"-"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

type Response struct {
	Success bool   `json:"success"`
	Code    Kind   `json:"code,omitempty"`
	Error   string `json:"error"`
}

// NewError builds an error whose client message and log message are the same.
// Severity defaults to error level.
func NewError(httpStatusCode int, message string, logFields ...zap.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		Kind:           kindForStatus(httpStatusCode),
		Message:        message,
		LogMessage:     message,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) Error() string {
	return fmt.Sprintf("%s: %s", cerr.Kind, cerr.LogMessage)
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) SetLogMessage(message string) *CustomError {
	cerr.LogMessage = message
	return cerr
}

func (cerr *CustomError) WithFields(fields ...zap.Field) *CustomError {
	cerr.LogFields = append(cerr.LogFields, fields...)
	return cerr
}

func (cerr *CustomError) Response() Response {
	return Response{
		Success: false,
		Code:    cerr.Kind,
		Error:   cerr.Message,
	}
}

func (cerr *CustomError) SerializeCerror() error {
	var marshalledToByte []byte
	marshalledToByte, _ = json.Marshal(cerr)

	return errors.New(string(marshalledToByte))
}

// KindOf returns the kind of a CustomError anywhere in the chain, or "" otherwise.
func KindOf(err error) Kind {
	var cerr *CustomError
	if errors.As(err, &cerr) {
		return cerr.Kind
	}

	return ""
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
