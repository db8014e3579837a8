package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/service"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserLoader resolves the subject of a verified token.
type UserLoader interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// AuthMiddleware admits requests carrying a valid bearer token whose user
// still exists.
func AuthMiddleware(jwtManager *auth.JWTManager, users UserLoader, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			logger.Warn("Missing authorization token", zap.String("path", c.Path()))
			return unauthorized(c, "Not authorized, no token")
		}

		claims, err := jwtManager.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return unauthorized(c, "Not authorized, token failed")
		}

		user, err := users.GetUser(c.UserContext(), claims.UserID)
		if errors.Is(err, service.ErrUserNotFound) {
			logger.Warn("Token subject no longer exists", zap.String("user_id", claims.UserID))
			return unauthorized(c, "Not authorized, user not found")
		}
		if err != nil {
			logger.Error("Failed to load token subject", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}

		c.Locals("userID", user.ID.String())
		c.Locals("username", user.Username)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}
