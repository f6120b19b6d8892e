package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys written by the auth middleware.
const (
	LocalsUserID   = "user_id"
	LocalsUserRole = "userRole"
	LocalsUserName = "user_name"
)

// GetUserIDFromToken returns the authenticated user's id from request locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocalsUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

// GetUserRole returns the role claim stored by the auth middleware ("" if absent).
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalsUserRole).(string)
	return role
}

// GetUserName returns the display name claim stored by the auth middleware
// ("" if absent).
func GetUserName(c *fiber.Ctx) string {
	name, _ := c.Locals(LocalsUserName).(string)
	return name
}

// ExtractBearerToken pulls the raw token from the Authorization header,
// falling back to the access_token cookie for browser sessions.
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - malformed Authorization header")
	}
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing token")
}
