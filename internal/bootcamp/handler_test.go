//go:build unit

package bootcamp

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-api/internal/auth"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/query"
	"bootcamp-api/pkg/server"
)

type testGate struct {
	current *user.UserDocument
}

func (g testGate) Protect(ctx *fiber.Ctx) error {
	if g.current == nil {
		return cerror.Unauthenticated()
	}
	ctx.Locals(auth.UserContextKey, g.current)
	return ctx.Next()
}

func (g testGate) Authorize(roles ...string) fiber.Handler {
	return auth.RequireRoles(roles...)
}

func newHandlerTestApp(bootcampService Service, current *user.UserDocument) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	NewHandler(bootcampService, testGate{current: current}).RegisterRoutes(app)

	return app
}

func TestNewHandler(t *testing.T) {
	bootcampHandler := NewHandler(nil, testGate{})

	assert.Implements(t, (*server.Handler)(nil), bootcampHandler)
}

func TestHandler_GetBootcamps(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockBootcampService := NewMockService(mockController)
		mockBootcampService.
			EXPECT().
			GetBootcamps(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, descriptor *query.Descriptor) (*query.Result[BootcampDocument], error) {
				assert.Equal(t, []string{"name", "careers"}, descriptor.Select)
				assert.Equal(t, int64(2), descriptor.Page)
				return &query.Result[BootcampDocument]{
					Success: true,
					Count:   1,
					Data:    []BootcampDocument{*newTestBootcamp()},
				}, nil
			})

		resp, err := newHandlerTestApp(mockBootcampService, nil).
			Test(httptest.NewRequest(fiber.MethodGet, "/bootcamps?select=name,careers&page=2", nil))
		require.NoError(t, err)

		var body query.Result[BootcampDocument]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, TestBootcampId, body.Data[0].Id)
	})

	t.Run("malformed filter should return bad request", func(t *testing.T) {
		resp, err := newHandlerTestApp(nil, nil).
			Test(httptest.NewRequest(fiber.MethodGet, "/bootcamps?averageCost[regex]=1", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_GetBootcampsInRadius(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockBootcampService := NewMockService(mockController)
		mockBootcampService.
			EXPECT().
			GetBootcampsInRadius(gomock.Any(), TestZipcode, 10.0).
			Return([]BootcampDocument{*newTestBootcamp()}, nil)

		resp, err := newHandlerTestApp(mockBootcampService, nil).
			Test(httptest.NewRequest(fiber.MethodGet, "/bootcamps/radius/"+TestZipcode+"/10", nil))
		require.NoError(t, err)

		var body BootcampsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, body.Count)
	})

	t.Run("non numeric distance should return bad request", func(t *testing.T) {
		resp, err := newHandlerTestApp(nil, nil).
			Test(httptest.NewRequest(fiber.MethodGet, "/bootcamps/radius/"+TestZipcode+"/far", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when geocoding fails should return bad request", func(t *testing.T) {
		mockBootcampService := NewMockService(mockController)
		mockBootcampService.
			EXPECT().
			GetBootcampsInRadius(gomock.Any(), "00000", 10.0).
			Return(nil, cerror.GeocodingFailed("00000"))

		resp, err := newHandlerTestApp(mockBootcampService, nil).
			Test(httptest.NewRequest(fiber.MethodGet, "/bootcamps/radius/00000/10", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_CreateBootcamp(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	payload := CreateBootcampPayload{
		Name:        TestBootcampName,
		Description: "Is coding your passion?",
		Address:     TestAddress,
		Careers:     []string{"Web Development", "Data Science"},
	}
	reqBody, err := json.Marshal(&payload)
	require.NoError(t, err)

	newRequest := func(body []byte) *http.Request {
		req := httptest.NewRequest(fiber.MethodPost, "/bootcamps", bytes.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return req
	}

	t.Run("happy path", func(t *testing.T) {
		mockBootcampService := NewMockService(mockController)
		mockBootcampService.
			EXPECT().
			CreateBootcamp(gomock.Any(), testOwner, &payload).
			Return(newTestBootcamp(), nil)

		resp, err := newHandlerTestApp(mockBootcampService, testOwner).Test(newRequest(reqBody))
		require.NoError(t, err)

		var body BootcampResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, TestBootcampId, body.Data.Id)
	})

	t.Run("anonymous should return unauthorized", func(t *testing.T) {
		resp, err := newHandlerTestApp(nil, nil).Test(newRequest(reqBody))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("user role should return forbidden", func(t *testing.T) {
		resp, err := newHandlerTestApp(nil, &user.UserDocument{Id: TestOtherUserId, Role: user.RoleUser}).
			Test(newRequest(reqBody))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("unknown career should return bad request", func(t *testing.T) {
		invalid := payload
		invalid.Careers = []string{"Astrology"}
		invalidBody, err := json.Marshal(&invalid)
		require.NoError(t, err)

		resp, err := newHandlerTestApp(nil, testOwner).Test(newRequest(invalidBody))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_DeleteBootcamp(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockBootcampService := NewMockService(mockController)
		mockBootcampService.
			EXPECT().
			DeleteBootcamp(gomock.Any(), testOwner, TestBootcampId).
			Return(nil)

		resp, err := newHandlerTestApp(mockBootcampService, testOwner).
			Test(httptest.NewRequest(fiber.MethodDelete, "/bootcamps/"+TestBootcampId, nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when not owner should return forbidden", func(t *testing.T) {
		mockBootcampService := NewMockService(mockController)
		mockBootcampService.
			EXPECT().
			DeleteBootcamp(gomock.Any(), testPublisher, TestBootcampId).
			Return(cerror.Forbidden("not owner"))

		resp, err := newHandlerTestApp(mockBootcampService, testPublisher).
			Test(httptest.NewRequest(fiber.MethodDelete, "/bootcamps/"+TestBootcampId, nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestHandler_UploadPhoto(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		var reqBody bytes.Buffer
		writer := multipart.NewWriter(&reqBody)
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="logo.jpg"`)
		header.Set(fiber.HeaderContentType, "image/jpeg")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		mockBootcampService := NewMockService(mockController)
		mockBootcampService.
			EXPECT().
			UploadPhoto(gomock.Any(), testOwner, TestBootcampId, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *user.UserDocument, _ string, photo *Photo) (string, error) {
				assert.Equal(t, "logo.jpg", photo.Filename)
				assert.Equal(t, "image/jpeg", photo.ContentType)
				assert.Equal(t, int64(4), photo.Size)
				return "photo_" + TestBootcampId + ".jpg", nil
			})

		req := httptest.NewRequest(fiber.MethodPut, "/bootcamps/"+TestBootcampId+"/photo", &reqBody)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		resp, err := newHandlerTestApp(mockBootcampService, testOwner).Test(req)
		require.NoError(t, err)

		var body PhotoResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "photo_"+TestBootcampId+".jpg", body.Data)
	})

	t.Run("missing file should return bad request", func(t *testing.T) {
		resp, err := newHandlerTestApp(nil, testOwner).
			Test(httptest.NewRequest(fiber.MethodPut, "/bootcamps/"+TestBootcampId+"/photo", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
