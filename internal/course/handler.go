package course

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bootcamp-api/internal/auth"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/query"
	"bootcamp-api/pkg/server"
)

type handler struct {
	courseService Service
	gate          auth.Gate
}

func NewHandler(courseService Service, gate auth.Gate) server.Handler {
	return &handler{
		courseService: courseService,
		gate:          gate,
	}
}

func (h *handler) RegisterRoutes(router fiber.Router) {
	publisher := []fiber.Handler{h.gate.Protect, h.gate.Authorize(user.RolePublisher, user.RoleAdmin)}

	courses := router.Group("/courses")
	courses.Get("/", h.GetCourses)
	courses.Post("/", append(publisher, h.AddCourse)...)
	courses.Get("/:id", h.GetCourse)
	courses.Put("/:id", append(publisher, h.UpdateCourse)...)
	courses.Delete("/:id", append(publisher, h.DeleteCourse)...)

	bootcampCourses := router.Group("/bootcamps/:bootcampId/courses")
	bootcampCourses.Get("/", h.GetCourses)
	bootcampCourses.Post("/", append(publisher, h.AddCourse)...)
}

func (h *handler) GetCourses(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getCourses"))

	descriptor, err := query.FromRequest(ctx)
	if err != nil {
		return err
	}

	result, err := h.courseService.GetCourses(ctx.Context(), ctx.Params("bootcampId"), descriptor)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) GetCourse(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getCourse"))

	course, err := h.courseService.GetCourse(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(CourseResponse{Success: true, Data: course})
}

func (h *handler) AddCourse(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "addCourse"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var payload CreateCoursePayload
	err = server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	bootcampId := ctx.Params("bootcampId", payload.Bootcamp)
	course, err := h.courseService.AddCourse(ctx.Context(), current, bootcampId, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(CourseResponse{Success: true, Data: course})
}

func (h *handler) UpdateCourse(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateCourse"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var payload UpdateCoursePayload
	err = server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	course, err := h.courseService.UpdateCourse(ctx.Context(), current, ctx.Params("id"), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(CourseResponse{Success: true, Data: course})
}

func (h *handler) DeleteCourse(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteCourse"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	err = h.courseService.DeleteCourse(ctx.Context(), current, ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}
