//go:build unit

package cerror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCustomError_SerializeCerror(t *testing.T) {
	cerr := &CustomError{
		HttpStatusCode: http.StatusInternalServerError,
		LogMessage:     "test error",
		LogSeverity:    zap.ErrorLevel,
		LogFields: []zap.Field{
			zap.String("key", "value"),
		},
	}
	serializedCerr := cerr.SerializeCerror()

	assert.Error(t, serializedCerr)
	assert.Contains(t, serializedCerr.Error(), `"httpStatus":500`)
	assert.NotContains(t, serializedCerr.Error(), "value")
}

func TestNewError(t *testing.T) {
	cerr := NewError(http.StatusNotFound, "bootcamp not found")

	assert.Equal(t, KindNotFound, cerr.Kind)
	assert.Equal(t, "bootcamp not found", cerr.Message)
	assert.Equal(t, zap.ErrorLevel, cerr.LogSeverity)
}

func TestKindOf(t *testing.T) {
	t.Run("wrapped custom error", func(t *testing.T) {
		err := fmt.Errorf("login: %w", InvalidCredentials())

		assert.Equal(t, KindInvalidCredentials, KindOf(err))
		assert.True(t, Is(err, KindInvalidCredentials))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	})
}

func TestConstructors_ReturnFreshInstances(t *testing.T) {
	first := ValidationError("first")
	first.WithFields(zap.String("key", "value"))

	second := ValidationError("second")

	assert.Empty(t, second.LogFields)
}
