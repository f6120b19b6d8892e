package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/education/courses/controller"
)

// CoursePublicRoutes: read-only course catalog for the member site.
func CoursePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.CourseController{DB: db}

	courses := r.Group("/courses")
	courses.Get("/", ctrl.List)
	courses.Get("/:id", ctrl.GetByID)
}

// CourseAdminRoutes: back-office course management.
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.CourseController{DB: db}

	courses := r.Group("/courses")
	courses.Get("/", ctrl.List)
	courses.Get("/:id", ctrl.GetByID)
	courses.Post("/", ctrl.Create)
	courses.Put("/:id", ctrl.Update)
	courses.Delete("/:id", ctrl.Delete)
}
