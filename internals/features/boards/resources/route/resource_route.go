package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/boards/resources/controller"
	"certassoc_backend/internals/helpers/oss"
)

// ResourcePublicRoutes: downloadable files for the member site.
func ResourcePublicRoutes(r fiber.Router, db *gorm.DB, blob oss.BlobService) {
	ctrl := &controller.ResourceController{DB: db, Blob: blob}

	resources := r.Group("/resources")
	resources.Get("/", ctrl.List)
	resources.Get("/:id", ctrl.GetByID)
	resources.Post("/:id/download", ctrl.Download)
}

// ResourceAdminRoutes: back-office file management.
func ResourceAdminRoutes(r fiber.Router, db *gorm.DB, blob oss.BlobService) {
	ctrl := &controller.ResourceController{DB: db, Blob: blob}

	resources := r.Group("/resources")
	resources.Get("/", ctrl.List)
	resources.Get("/:id", ctrl.GetByID)
	resources.Post("/", ctrl.Create)
	resources.Delete("/:id", ctrl.Delete)
}
