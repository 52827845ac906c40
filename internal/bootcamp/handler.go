package bootcamp

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bootcamp-api/internal/auth"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/query"
	"bootcamp-api/pkg/server"
)

const photoFormField = "file"

type handler struct {
	bootcampService Service
	gate            auth.Gate
}

func NewHandler(bootcampService Service, gate auth.Gate) server.Handler {
	return &handler{
		bootcampService: bootcampService,
		gate:            gate,
	}
}

func (h *handler) RegisterRoutes(router fiber.Router) {
	publisher := []fiber.Handler{h.gate.Protect, h.gate.Authorize(user.RolePublisher, user.RoleAdmin)}

	bootcamps := router.Group("/bootcamps")
	bootcamps.Get("/radius/:zipcode/:distance", h.GetBootcampsInRadius)
	bootcamps.Get("/", h.GetBootcamps)
	bootcamps.Post("/", append(publisher, h.CreateBootcamp)...)
	bootcamps.Get("/:id", h.GetBootcamp)
	bootcamps.Put("/:id", append(publisher, h.UpdateBootcamp)...)
	bootcamps.Delete("/:id", append(publisher, h.DeleteBootcamp)...)
	bootcamps.Put("/:id/photo", append(publisher, h.UploadPhoto)...)
}

func (h *handler) GetBootcamps(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getBootcamps"))

	descriptor, err := query.FromRequest(ctx)
	if err != nil {
		return err
	}

	result, err := h.bootcampService.GetBootcamps(ctx.Context(), descriptor)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) GetBootcamp(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getBootcamp"))

	bootcamp, err := h.bootcampService.GetBootcamp(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(BootcampResponse{Success: true, Data: bootcamp})
}

func (h *handler) GetBootcampsInRadius(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getBootcampsInRadius"))

	distance, err := strconv.ParseFloat(ctx.Params("distance"), 64)
	if err != nil {
		return cerror.ValidationError("distance must be a positive number").
			WithFields(zap.Error(err))
	}

	bootcamps, err := h.bootcampService.GetBootcampsInRadius(ctx.Context(), ctx.Params("zipcode"), distance)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(BootcampsResponse{Success: true, Count: len(bootcamps), Data: bootcamps})
}

func (h *handler) CreateBootcamp(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createBootcamp"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var payload CreateBootcampPayload
	err = server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	bootcamp, err := h.bootcampService.CreateBootcamp(ctx.Context(), current, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(BootcampResponse{Success: true, Data: bootcamp})
}

func (h *handler) UpdateBootcamp(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateBootcamp"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var payload UpdateBootcampPayload
	err = server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	bootcamp, err := h.bootcampService.UpdateBootcamp(ctx.Context(), current, ctx.Params("id"), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(BootcampResponse{Success: true, Data: bootcamp})
}

func (h *handler) DeleteBootcamp(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteBootcamp"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	err = h.bootcampService.DeleteBootcamp(ctx.Context(), current, ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

func (h *handler) UploadPhoto(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "uploadBootcampPhoto"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile(photoFormField)
	if err != nil {
		return cerror.ValidationError("please upload a file").
			WithFields(zap.Error(err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return cerror.DependencyError("error occurred while open uploaded file").
			WithFields(zap.Error(err))
	}
	defer file.Close() //nolint:errcheck

	name, err := h.bootcampService.UploadPhoto(ctx.Context(), current, ctx.Params("id"), &Photo{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(PhotoResponse{Success: true, Data: name})
}
