package auth

import (
	"time"

	"bootcamp-api/internal/user"
)

const (
	TokenCookieName      = "token"
	UserContextKey       = "user"
	ResetTokenLifetime   = 10 * time.Minute
	ResetTokenByteSize   = 20
	ResetPasswordPath    = "/auth/resetpassword/"
	ResetPasswordSubject = "Password reset token"
)

type RegisterPayload struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateDetailsPayload struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

type UpdatePasswordPayload struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

type ForgotPasswordPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordPayload struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Session is a signed token issued for a user.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *user.UserDocument
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type UserResponse struct {
	Success bool               `json:"success"`
	Data    *user.UserDocument `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}
