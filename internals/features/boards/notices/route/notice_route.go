package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/boards/notices/controller"
)

// NoticePublicRoutes: published announcements for the member site.
func NoticePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.NoticeController{DB: db}

	notices := r.Group("/notices")
	notices.Get("/", ctrl.PublicList)
	notices.Get("/:id", ctrl.PublicGetByID)
}

// NoticeAdminRoutes: back-office notice management.
func NoticeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.NoticeController{DB: db}

	notices := r.Group("/notices")
	notices.Get("/", ctrl.AdminList)
	notices.Get("/:id", ctrl.AdminGetByID)
	notices.Post("/", ctrl.Create)
	notices.Put("/:id", ctrl.Update)
	notices.Delete("/:id", ctrl.Delete)
}
