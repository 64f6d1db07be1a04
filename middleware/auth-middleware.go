package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/models"
	"github.com/krishkalaria12/vitalplan-api/repository"
	"go.uber.org/zap"
)

const (
	CookieName = "JWT"
	userKey    = "user"
)

type TokenParser interface {
	Parse(token string) (uint, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware reads a bearer token (or the JWT cookie), verifies it and
// loads the active user into the request locals.
func AuthMiddleware(tokens TokenParser, users UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenStr == "" {
			tokenStr = c.Cookies(CookieName)
		}

		if tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "You are not authorized!")
		}

		userID, err := tokens.Parse(tokenStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
			}
			logger.Error("failed to load user", zap.Uint("user_id", userID), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Database error")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "Account is inactive")
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(userKey).(*models.User)
	if !ok || user == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}
	return user, nil
}

// SetCurrentUser is used by tests that mount handlers without the middleware.
func SetCurrentUser(c *fiber.Ctx, user *models.User) {
	c.Locals(userKey, user)
}
