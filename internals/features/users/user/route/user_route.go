package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/users/user/controller"
)

// UserRoutes: member self-service endpoints (mounted under an authed group).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.UserController{DB: db}

	users := r.Group("/users")
	users.Get("/me", ctrl.GetMe)
	users.Put("/me", ctrl.UpdateMe)
}

// AdminUserRoutes: back-office user management (mounted under the admin group).
func AdminUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.UserController{DB: db}

	users := r.Group("/users")
	users.Get("/", ctrl.AdminList)
	users.Patch("/:id/status", ctrl.AdminUpdateStatus)
}
