package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/server"
)

type handler struct {
	authService  Service
	gate         Gate
	cookieExpire time.Duration
	secureCookie bool
	publicUrl    string
}

func NewHandler(authService Service, gate Gate, cfg *config.Config) server.Handler {
	return &handler{
		authService:  authService,
		gate:         gate,
		cookieExpire: time.Duration(cfg.Jwt.CookieExpireDays) * 24 * time.Hour,
		secureCookie: cfg.IsProduction(),
		publicUrl:    cfg.Email.PublicUrl,
	}
}

func (h *handler) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/logout", h.Logout)
	auth.Get("/me", h.gate.Protect, h.GetMe)
	auth.Put("/updatedetails", h.gate.Protect, h.UpdateDetails)
	auth.Put("/updatepassword", h.gate.Protect, h.UpdatePassword)
	auth.Post("/forgotpassword", h.ForgotPassword)
	auth.Put("/resetpassword/:token", h.ResetPassword)
}

func (h *handler) Register(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "register"))

	var payload RegisterPayload
	err := server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	session, err := h.authService.Register(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.String("userId", session.User.Id))
	return h.sendTokenResponse(ctx, fiber.StatusCreated, session)
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "login"))

	var payload LoginPayload
	err := server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	session, err := h.authService.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.String("userId", session.User.Id))
	return h.sendTokenResponse(ctx, fiber.StatusOK, session)
}

func (h *handler) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    "none",
		Expires:  time.Now().Add(10 * time.Second),
		HTTPOnly: true,
		Secure:   h.secureCookie,
	})

	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{"success": true, "data": fiber.Map{}})
}

func (h *handler) GetMe(ctx *fiber.Ctx) error {
	current, err := CurrentUser(ctx)
	if err != nil {
		return err
	}

	return ctx.
		Status(fiber.StatusOK).
		JSON(UserResponse{Success: true, Data: current})
}

func (h *handler) UpdateDetails(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateDetails"))

	current, err := CurrentUser(ctx)
	if err != nil {
		return err
	}

	var payload UpdateDetailsPayload
	err = server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	updated, err := h.authService.UpdateDetails(ctx.Context(), current.Id, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(UserResponse{Success: true, Data: updated})
}

func (h *handler) UpdatePassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updatePassword"))

	current, err := CurrentUser(ctx)
	if err != nil {
		return err
	}

	var payload UpdatePasswordPayload
	err = server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	session, err := h.authService.UpdatePassword(ctx.Context(), current.Id, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return h.sendTokenResponse(ctx, fiber.StatusOK, session)
}

func (h *handler) ForgotPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "forgotPassword"))

	var payload ForgotPasswordPayload
	err := server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	resetUrlPrefix := h.publicUrl + server.ApiPrefix + ResetPasswordPath
	err = h.authService.ForgotPassword(logger.InjectContext(ctx.Context(), log), payload.Email, resetUrlPrefix)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(MessageResponse{Success: true, Data: "Email sent"})
}

func (h *handler) ResetPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "resetPassword"))

	var payload ResetPasswordPayload
	err := server.BindBody(ctx, &payload)
	if err != nil {
		return err
	}

	session, err := h.authService.ResetPassword(ctx.Context(), ctx.Params("token"), &payload)
	if err != nil {
		return err
	}

	log.Infow(logger.EventFinishedSuccessfully, zap.String("userId", session.User.Id))
	return h.sendTokenResponse(ctx, fiber.StatusOK, session)
}

func (h *handler) sendTokenResponse(ctx *fiber.Ctx, status int, session *Session) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    session.Token,
		Expires:  time.Now().Add(h.cookieExpire),
		HTTPOnly: true,
		Secure:   h.secureCookie,
	})

	return ctx.
		Status(status).
		JSON(TokenResponse{Success: true, Token: session.Token})
}
