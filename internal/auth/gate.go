package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/jwt_generator"
)

const bearerPrefix = "Bearer "

// Gate builds the middleware stages that guard protected routes. Protect
// must run before Authorize.
type Gate interface {
	Protect(ctx *fiber.Ctx) error
	Authorize(roles ...string) fiber.Handler
}

type gate struct {
	jwtGenerator   jwt_generator.JwtGenerator
	userRepository user.Repository
}

func NewGate(jwtGenerator jwt_generator.JwtGenerator, userRepository user.Repository) Gate {
	return &gate{
		jwtGenerator:   jwtGenerator,
		userRepository: userRepository,
	}
}

func (g *gate) Protect(ctx *fiber.Ctx) error {
	rawToken := tokenFromRequest(ctx)
	if rawToken == "" {
		return cerror.Unauthenticated()
	}

	claims, err := g.jwtGenerator.VerifyToken(rawToken)
	if err != nil {
		return cerror.Unauthenticated().WithFields(zap.Error(err))
	}

	found, err := g.userRepository.FindUserWithId(ctx.Context(), claims.Subject)
	if err != nil {
		if cerror.Is(err, cerror.KindNotFound) {
			return cerror.Unauthenticated().
				SetLogMessage("token subject does not exist").
				WithFields(zap.String("userId", claims.Subject))
		}

		return err
	}

	ctx.Locals(UserContextKey, found)
	return ctx.Next()
}

func (g *gate) Authorize(roles ...string) fiber.Handler {
	return RequireRoles(roles...)
}

// RequireRoles rejects callers whose role is not listed.
func RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		current, err := CurrentUser(ctx)
		if err != nil {
			return err
		}

		for _, role := range roles {
			if current.Role == role {
				return ctx.Next()
			}
		}

		return cerror.Forbidden(fmt.Sprintf("user role %s is not authorized to access this route", current.Role))
	}
}

// AuthorizeOwnership allows the owner of a resource and admins.
func AuthorizeOwnership(ownerId string, requester *user.UserDocument, resource string) error {
	if requester.Role == user.RoleAdmin || requester.Id == ownerId {
		return nil
	}

	return cerror.Forbidden(fmt.Sprintf("user %s is not authorized to modify this %s", requester.Id, resource))
}

func CurrentUser(ctx *fiber.Ctx) (*user.UserDocument, error) {
	current, ok := ctx.Locals(UserContextKey).(*user.UserDocument)
	if !ok || current == nil {
		return nil, cerror.Unauthenticated()
	}

	return current, nil
}

func tokenFromRequest(ctx *fiber.Ctx) string {
	authorization := ctx.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authorization, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
	}

	return ctx.Cookies(TokenCookieName)
}
