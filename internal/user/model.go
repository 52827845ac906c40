package user

import "time"

const (
	RoleUser      = "user"
	RolePublisher = "publisher"
	RoleAdmin     = "admin"
)

type UserDocument struct {
	Id                  string     `json:"_id" bson:"_id"`
	Name                string     `json:"name" bson:"name"`
	Email               string     `json:"email" bson:"email"`
	Role                string     `json:"role" bson:"role"`
	Password            string     `json:"-" bson:"password"`
	ResetPasswordToken  string     `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpire *time.Time `json:"-" bson:"resetPasswordExpire,omitempty"`
	CreatedAt           time.Time  `json:"createdAt" bson:"createdAt"`
}

// UpdateUserDocument sets only the non empty fields.
type UpdateUserDocument struct {
	Name     string `bson:"name,omitempty"`
	Email    string `bson:"email,omitempty"`
	Role     string `bson:"role,omitempty"`
	Password string `bson:"password,omitempty"`
}

type CreateUserPayload struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher admin"`
}

type UpdateUserPayload struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"omitempty,oneof=user publisher admin"`
}

type UserResponse struct {
	Success bool          `json:"success"`
	Data    *UserDocument `json:"data"`
}

// PrivateFields are never returned by listing queries.
var PrivateFields = []string{"password", "resetPasswordToken", "resetPasswordExpire"}
