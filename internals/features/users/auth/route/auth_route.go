package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/users/auth/controller"
	"certassoc_backend/internals/middlewares"
	authMw "certassoc_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &controller.AuthController{DB: db}

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/refresh-token", ctrl.Refresh)
	auth.Post("/admin/login", middlewares.LoginRateLimiter(), ctrl.AdminLogin)
	auth.Get("/verify", ctrl.Verify)

	auth.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
}
