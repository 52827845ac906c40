//go:build unit

package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
)

func newGateTestApp(gate Gate, roles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})

	handlers := []fiber.Handler{gate.Protect}
	if len(roles) > 0 {
		handlers = append(handlers, gate.Authorize(roles...))
	}
	handlers = append(handlers, func(ctx *fiber.Ctx) error {
		current, err := CurrentUser(ctx)
		if err != nil {
			return err
		}
		return ctx.SendString(current.Id)
	})
	app.Get("/protected", handlers...)

	return app
}

func TestGate_Protect(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := newTestJwtGenerator(t)
	token, err := jwtGenerator.GenerateToken(time.Now().Add(time.Hour), TestUserId)
	require.NoError(t, err)

	t.Run("bearer token", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(&user.UserDocument{Id: TestUserId, Role: user.RoleUser}, nil)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := newGateTestApp(NewGate(jwtGenerator, mockUserRepository)).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("cookie token", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(&user.UserDocument{Id: TestUserId, Role: user.RoleUser}, nil)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderCookie, TokenCookieName+"="+token)
		resp, err := newGateTestApp(NewGate(jwtGenerator, mockUserRepository)).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing token", func(t *testing.T) {
		resp, err := newGateTestApp(NewGate(jwtGenerator, nil)).
			Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwtGenerator.GenerateToken(time.Now().Add(-time.Minute), TestUserId)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+expired)
		resp, err := newGateTestApp(NewGate(jwtGenerator, nil)).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(nil, cerror.NotFound("user", TestUserId))

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := newGateTestApp(NewGate(jwtGenerator, mockUserRepository)).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGate_Authorize(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	jwtGenerator := newTestJwtGenerator(t)
	token, err := jwtGenerator.GenerateToken(time.Now().Add(time.Hour), TestUserId)
	require.NoError(t, err)

	for _, testCase := range []struct {
		role   string
		status int
	}{
		{role: user.RoleUser, status: fiber.StatusForbidden},
		{role: user.RolePublisher, status: fiber.StatusOK},
		{role: user.RoleAdmin, status: fiber.StatusOK},
	} {
		t.Run(testCase.role, func(t *testing.T) {
			mockUserRepository := user.NewMockRepository(mockController)
			mockUserRepository.
				EXPECT().
				FindUserWithId(gomock.Any(), TestUserId).
				Return(&user.UserDocument{Id: TestUserId, Role: testCase.role}, nil)

			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
			resp, err := newGateTestApp(NewGate(jwtGenerator, mockUserRepository), user.RolePublisher, user.RoleAdmin).Test(req)

			require.NoError(t, err)
			assert.Equal(t, testCase.status, resp.StatusCode)
		})
	}

	t.Run("without protect should return unauthenticated", func(t *testing.T) {
		app := fiber.New(fiber.Config{ErrorHandler: cerror.Middleware})
		app.Get("/", RequireRoles(user.RoleAdmin), func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthorizeOwnership(t *testing.T) {
	const ownerId = "owner"

	t.Run("owner is allowed", func(t *testing.T) {
		err := AuthorizeOwnership(ownerId, &user.UserDocument{Id: ownerId, Role: user.RolePublisher}, "bootcamp")

		assert.NoError(t, err)
	})

	t.Run("admin is allowed", func(t *testing.T) {
		err := AuthorizeOwnership(ownerId, &user.UserDocument{Id: "admin", Role: user.RoleAdmin}, "bootcamp")

		assert.NoError(t, err)
	})

	t.Run("other publisher is forbidden", func(t *testing.T) {
		err := AuthorizeOwnership(ownerId, &user.UserDocument{Id: "other", Role: user.RolePublisher}, "bootcamp")

		assert.True(t, cerror.Is(err, cerror.KindForbidden))
	})
}
