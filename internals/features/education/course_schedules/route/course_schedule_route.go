package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/education/course_schedules/controller"
)

// CourseSchedulePublicRoutes: read-only offering listing for the member site.
func CourseSchedulePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.CourseScheduleController{DB: db}

	schedules := r.Group("/course-schedules")
	schedules.Get("/", ctrl.List)
	schedules.Get("/:id", ctrl.GetByID)
}

// CourseScheduleAdminRoutes: back-office offering management.
func CourseScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.CourseScheduleController{DB: db}

	schedules := r.Group("/course-schedules")
	schedules.Get("/", ctrl.List)
	schedules.Get("/:id", ctrl.GetByID)
	schedules.Post("/", ctrl.Create)
	schedules.Put("/:id", ctrl.Update)
	schedules.Patch("/:id/status", ctrl.UpdateStatus)
	schedules.Delete("/:id", ctrl.Delete)
}
