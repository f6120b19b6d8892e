package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/certifications/certification/controller"
)

// CertificationPublicRoutes: read-only catalog endpoints.
func CertificationPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.CertificationController{DB: db}

	certs := r.Group("/certifications")
	certs.Get("/", ctrl.List)
	certs.Get("/:id", ctrl.GetByID)
}

// CertificationAdminRoutes: back-office catalog management.
func CertificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.CertificationController{DB: db}

	certs := r.Group("/certifications")
	certs.Get("/", ctrl.List)
	certs.Get("/:id", ctrl.GetByID)
	certs.Post("/", ctrl.Create)
	certs.Put("/:id", ctrl.Update)
	certs.Delete("/:id", ctrl.Delete)
}
