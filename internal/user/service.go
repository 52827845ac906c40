package user

//go:generate mockgen -source=service.go -destination=mock_service.go -package=user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bootcamp-api/pkg/query"
	"bootcamp-api/pkg/sanitize"
)

// Service is the administrative user management used by admins only.
type Service interface {
	GetUsers(ctx context.Context, descriptor *query.Descriptor) (*query.Result[UserDocument], error)
	GetUser(ctx context.Context, userId string) (*UserDocument, error)
	CreateUser(ctx context.Context, user *CreateUserPayload) (*UserDocument, error)
	UpdateUser(ctx context.Context, userId string, user *UpdateUserPayload) (*UserDocument, error)
	DeleteUser(ctx context.Context, userId string) error
}

type service struct {
	userRepository Repository
	bcryptCost     int
}

func NewService(userRepository Repository, bcryptCost int) Service {
	return &service{
		userRepository: userRepository,
		bcryptCost:     bcryptCost,
	}
}

func (s *service) GetUsers(ctx context.Context, descriptor *query.Descriptor) (*query.Result[UserDocument], error) {
	return s.userRepository.FindUsers(ctx, descriptor)
}

func (s *service) GetUser(ctx context.Context, userId string) (*UserDocument, error) {
	return s.userRepository.FindUserWithId(ctx, userId)
}

func (s *service) CreateUser(ctx context.Context, user *CreateUserPayload) (*UserDocument, error) {
	hashedPassword, err := HashPassword(user.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := user.Role
	if role == "" {
		role = RoleUser
	}

	document := &UserDocument{
		Id:        uuid.New().String(),
		Name:      sanitize.Text(user.Name),
		Email:     user.Email,
		Role:      role,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC(),
	}
	err = s.userRepository.InsertUser(ctx, document)
	if err != nil {
		return nil, err
	}

	return document, nil
}

func (s *service) UpdateUser(ctx context.Context, userId string, user *UpdateUserPayload) (*UserDocument, error) {
	update := &UpdateUserDocument{
		Name:  sanitize.Text(user.Name),
		Email: user.Email,
		Role:  user.Role,
	}
	if *update == (UpdateUserDocument{}) {
		return s.userRepository.FindUserWithId(ctx, userId)
	}

	return s.userRepository.UpdateUserById(ctx, userId, update)
}

func (s *service) DeleteUser(ctx context.Context, userId string) error {
	return s.userRepository.DeleteUserById(ctx, userId)
}
