package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/dashboard/controller"
)

// DashboardAdminRoutes: the back-office landing numbers.
func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.DashboardController{DB: db}

	r.Get("/dashboard", ctrl.Summary)
}
