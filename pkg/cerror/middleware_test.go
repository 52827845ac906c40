//go:build unit

package cerror

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMiddleware(t *testing.T) {
	newApp := func(routeErr error) *fiber.App {
		app := fiber.New(fiber.Config{
			ErrorHandler: Middleware,
		})
		app.Get("/", func(ctx *fiber.Ctx) error {
			return routeErr
		})
		return app
	}

	t.Run("custom error should be written with its status and message", func(t *testing.T) {
		app := newApp(Forbidden("user is not the owner").WithFields(zap.String("userId", "abc")))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var response Response
		require.NoError(t, json.Unmarshal(body, &response))

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.False(t, response.Success)
		assert.Equal(t, KindForbidden, response.Code)
		assert.Equal(t, "user is not the owner", response.Error)
	})

	t.Run("dependency error should not leak log message", func(t *testing.T) {
		app := newApp(DependencyError("error occurred while find user with id"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.NotContains(t, string(body), "find user")
	})

	t.Run("fiber error should keep its status code", func(t *testing.T) {
		app := newApp(fiber.ErrUnprocessableEntity)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("unknown error should become internal server error", func(t *testing.T) {
		app := newApp(errors.New("something went wrong"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
