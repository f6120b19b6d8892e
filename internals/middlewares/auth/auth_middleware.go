package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"certassoc_backend/internals/configs"
	authModel "certassoc_backend/internals/features/users/auth/model"
	helper "certassoc_backend/internals/helpers"
)

// AuthMiddleware validates the bearer token, rejects blacklisted tokens and
// stores the basic claims into request locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := helper.ExtractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		// Blacklist check, once per request
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] blacklist lookup:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token expired")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token parse error")
		}

		storeClaimsToLocals(c, claims)
		c.Locals("token_string", tokenString)
		return c.Next()
	}
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Locals(helper.LocalsUserID, sub)
	} else if id, ok := claims["user_id"].(string); ok {
		c.Locals(helper.LocalsUserID, id)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals(helper.LocalsUserRole, role)
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals(helper.LocalsUserName, name)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("user_email", email)
	}
}

// TokenExpiry reads exp from an already-verified claim set.
func TokenExpiry(claims jwt.MapClaims) (time.Time, bool) {
	switch v := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case int64:
		return time.Unix(v, 0), true
	default:
		return time.Time{}, false
	}
}
