package review

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
	reviewService Service
	gate          auth.Gate
}

func NewHandler(reviewService Service, gate auth.Gate) server.Handler {
	return &handler{
		reviewService: reviewService,
		gate:          gate,
	}
}

func (h *handler) RegisterRoutes(router fiber.Router) {
	reviewer := []fiber.Handler{h.gate.Protect, h.gate.Authorize(user.RoleUser, user.RoleAdmin)}

	reviews := router.Group("/reviews")
	reviews.Get("/", h.GetReviews)
	reviews.Post("/", append(reviewer, h.AddReview)...)
	reviews.Get("/:id", h.GetReview)
	reviews.Put("/:id", append(reviewer, h.UpdateReview)...)
	reviews.Delete("/:id", append(reviewer, h.DeleteReview)...)

	bootcampReviews := router.Group("/bootcamps/:bootcampId/reviews")
	bootcampReviews.Get("/", h.GetReviews)
	bootcampReviews.Post("/", append(reviewer, h.AddReview)...)
}

func (h *handler) GetReviews(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getReviews"))

	descriptor, err := query.FromRequest(ctx)
	if err != nil {
		return err
	}

	result, err := h.reviewService.GetReviews(ctx.Context(), ctx.Params("bootcampId"), descriptor)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) GetReview(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getReview"))

	review, err := h.reviewService.GetReview(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(ReviewResponse{Success: true, Data: review})
}

func (h *handler) AddReview(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "addReview"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var payload CreateReviewPayload
	err = server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	bootcampId := ctx.Params("bootcampId", payload.Bootcamp)
	review, err := h.reviewService.AddReview(ctx.Context(), current, bootcampId, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(ReviewResponse{Success: true, Data: review})
}

func (h *handler) UpdateReview(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateReview"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var payload UpdateReviewPayload
	err = server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	review, err := h.reviewService.UpdateReview(ctx.Context(), current, ctx.Params("id"), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(ReviewResponse{Success: true, Data: review})
}

func (h *handler) DeleteReview(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteReview"))

	current, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	err = h.reviewService.DeleteReview(ctx.Context(), current, ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}
