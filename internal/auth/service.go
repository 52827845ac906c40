package auth

//go:generate mockgen -source=service.go -destination=mock_service.go -package=auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/jwt_generator"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/mailer"
	"bootcamp-api/pkg/sanitize"
)

type Service interface {
	Register(ctx context.Context, payload *RegisterPayload) (*Session, error)
	Login(ctx context.Context, payload *LoginPayload) (*Session, error)
	UpdateDetails(ctx context.Context, userId string, payload *UpdateDetailsPayload) (*user.UserDocument, error)
	UpdatePassword(ctx context.Context, userId string, payload *UpdatePasswordPayload) (*Session, error)
	ForgotPassword(ctx context.Context, email, resetUrlPrefix string) error
	ResetPassword(ctx context.Context, rawToken string, payload *ResetPasswordPayload) (*Session, error)
}

type service struct {
	userRepository user.Repository
	jwtGenerator   jwt_generator.JwtGenerator
	mailer         mailer.Mailer
	jwtConfig      *config.JwtConfig
	now            func() time.Time

	dummyHashOnce sync.Once
	dummyHash     string
	dummyHashErr  error
}

func NewService(
	userRepository user.Repository,
	jwtGenerator jwt_generator.JwtGenerator,
	mailer mailer.Mailer,
	jwtConfig *config.JwtConfig,
) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
		mailer:         mailer,
		jwtConfig:      jwtConfig,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Register(ctx context.Context, payload *RegisterPayload) (*Session, error) {
	_, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err == nil {
		return nil, cerror.DuplicateEmail().WithFields(zap.String("email", payload.Email))
	}
	if !cerror.Is(err, cerror.KindNotFound) {
		return nil, err
	}

	hashedPassword, err := user.HashPassword(payload.Password, s.jwtConfig.BcryptCost)
	if err != nil {
		return nil, err
	}

	role := payload.Role
	if role == "" {
		role = user.RoleUser
	}

	document := &user.UserDocument{
		Id:        uuid.New().String(),
		Name:      sanitize.Text(payload.Name),
		Email:     payload.Email,
		Role:      role,
		Password:  hashedPassword,
		CreatedAt: s.now(),
	}
	err = s.userRepository.InsertUser(ctx, document)
	if err != nil {
		return nil, err
	}

	return s.issueToken(document)
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*Session, error) {
	found, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err != nil {
		if cerror.Is(err, cerror.KindNotFound) {
			// compare anyway so an unknown email costs the same as a wrong password
			dummyHash, hashErr := s.getDummyHash()
			if hashErr != nil {
				return nil, hashErr
			}
			user.MatchPassword(dummyHash, payload.Password)
			return nil, cerror.InvalidCredentials()
		}

		return nil, err
	}

	if !user.MatchPassword(found.Password, payload.Password) {
		return nil, cerror.InvalidCredentials().WithFields(zap.String("userId", found.Id))
	}

	return s.issueToken(found)
}

func (s *service) UpdateDetails(
	ctx context.Context, userId string, payload *UpdateDetailsPayload,
) (*user.UserDocument, error) {
	update := &user.UpdateUserDocument{
		Name:  sanitize.Text(payload.Name),
		Email: payload.Email,
	}
	if *update == (user.UpdateUserDocument{}) {
		return s.userRepository.FindUserWithId(ctx, userId)
	}

	return s.userRepository.UpdateUserById(ctx, userId, update)
}

func (s *service) UpdatePassword(ctx context.Context, userId string, payload *UpdatePasswordPayload) (*Session, error) {
	found, err := s.userRepository.FindUserWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	if !user.MatchPassword(found.Password, payload.CurrentPassword) {
		return nil, cerror.InvalidCredentials().
			SetLogMessage("current password did not match").
			WithFields(zap.String("userId", userId))
	}

	hashedPassword, err := user.HashPassword(payload.NewPassword, s.jwtConfig.BcryptCost)
	if err != nil {
		return nil, err
	}

	updated, err := s.userRepository.UpdateUserById(ctx, userId, &user.UpdateUserDocument{
		Password: hashedPassword,
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(updated)
}

// ForgotPassword answers an unknown email exactly like a known one.
func (s *service) ForgotPassword(ctx context.Context, email, resetUrlPrefix string) error {
	log := logger.FromContext(ctx)

	found, err := s.userRepository.FindUserWithEmail(ctx, email)
	if err != nil {
		if cerror.Is(err, cerror.KindNotFound) {
			log.Infow("password reset requested for unknown email")
			return nil
		}

		return err
	}

	rawToken, hashedToken, err := newResetToken()
	if err != nil {
		return err
	}

	err = s.userRepository.SetResetPasswordToken(ctx, found.Id, hashedToken, s.now().Add(ResetTokenLifetime))
	if err != nil {
		return err
	}

	resetUrl := resetUrlPrefix + rawToken
	err = s.mailer.Send(ctx, &mailer.Message{
		To:      found.Email,
		Subject: ResetPasswordSubject,
		Text: fmt.Sprintf(
			"You are receiving this email because you (or someone else) has requested the reset of a password. "+
				"Please make a PUT request to: \n\n %s",
			resetUrl,
		),
	})
	if err != nil {
		clearErr := s.userRepository.ClearResetPasswordToken(ctx, found.Id)
		if clearErr != nil {
			log.Errorw("error occurred while roll back reset password token", zap.Error(clearErr))
		}

		return cerror.EmailDeliveryFailed().WithFields(zap.Error(err), zap.String("userId", found.Id))
	}

	return nil
}

func (s *service) ResetPassword(ctx context.Context, rawToken string, payload *ResetPasswordPayload) (*Session, error) {
	hashedPassword, err := user.HashPassword(payload.Password, s.jwtConfig.BcryptCost)
	if err != nil {
		return nil, err
	}

	updated, err := s.userRepository.ResetPasswordWithToken(ctx, HashResetToken(rawToken), hashedPassword, s.now())
	if err != nil {
		return nil, err
	}

	return s.issueToken(updated)
}

func (s *service) issueToken(document *user.UserDocument) (*Session, error) {
	expiresAt := s.now().Add(s.jwtConfig.Expire)
	token, err := s.jwtGenerator.GenerateToken(expiresAt, document.Id)
	if err != nil {
		return nil, cerror.DependencyError("error occurred while generate session token").
			WithFields(zap.Error(err))
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      document,
	}, nil
}

func (s *service) getDummyHash() (string, error) {
	s.dummyHashOnce.Do(func() {
		s.dummyHash, s.dummyHashErr = user.HashPassword(uuid.New().String(), s.jwtConfig.BcryptCost)
	})

	return s.dummyHash, s.dummyHashErr
}

// newResetToken returns the raw token for the email and the digest to store.
func newResetToken() (string, string, error) {
	tokenBytes := make([]byte, ResetTokenByteSize)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", cerror.DependencyError("error occurred while generate reset token").
			WithFields(zap.Error(err))
	}

	rawToken := hex.EncodeToString(tokenBytes)
	return rawToken, HashResetToken(rawToken), nil
}

func HashResetToken(rawToken string) string {
	digest := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(digest[:])
}
