package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/boards/gallery/controller"
	"certassoc_backend/internals/helpers/oss"
)

// GalleryPublicRoutes: photo board for the member site.
func GalleryPublicRoutes(r fiber.Router, db *gorm.DB, blob oss.BlobService) {
	ctrl := &controller.GalleryController{DB: db, Blob: blob}

	gallery := r.Group("/gallery")
	gallery.Get("/", ctrl.List)
	gallery.Get("/:id", ctrl.GetByID)
}

// GalleryAdminRoutes: back-office photo management.
func GalleryAdminRoutes(r fiber.Router, db *gorm.DB, blob oss.BlobService) {
	ctrl := &controller.GalleryController{DB: db, Blob: blob}

	gallery := r.Group("/gallery")
	gallery.Get("/", ctrl.List)
	gallery.Get("/:id", ctrl.GetByID)
	gallery.Post("/", ctrl.Create)
	gallery.Delete("/:id", ctrl.Delete)
}
