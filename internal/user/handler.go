package user

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/query"
	"bootcamp-api/pkg/server"
)

type handler struct {
	userService Service
	guards      []fiber.Handler
}

// NewHandler serves the admin user api. guards run before every route and
// are expected to authenticate the caller and require the admin role.
func NewHandler(userService Service, guards ...fiber.Handler) server.Handler {
	return &handler{
		userService: userService,
		guards:      guards,
	}
}

func (h *handler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users", h.guards...)
	users.Get("/", h.GetUsers)
	users.Post("/", h.CreateUser)
	users.Get("/:id", h.GetUser)
	users.Put("/:id", h.UpdateUser)
	users.Delete("/:id", h.DeleteUser)
}

func (h *handler) GetUsers(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUsers"))

	descriptor, err := query.FromRequest(ctx)
	if err != nil {
		return err
	}

	result, err := h.userService.GetUsers(ctx.Context(), descriptor)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) GetUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUser"))

	user, err := h.userService.GetUser(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(UserResponse{Success: true, Data: user})
}

func (h *handler) CreateUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createUser"))

	var payload CreateUserPayload
	err := server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	user, err := h.userService.CreateUser(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(UserResponse{Success: true, Data: user})
}

func (h *handler) UpdateUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateUser"))

	var payload UpdateUserPayload
	err := server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(ctx.Context(), ctx.Params("id"), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(UserResponse{Success: true, Data: user})
}

func (h *handler) DeleteUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteUser"))

	err := h.userService.DeleteUser(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}
