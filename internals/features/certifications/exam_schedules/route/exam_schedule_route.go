package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/certifications/exam_schedules/controller"
)

// ExamSchedulePublicRoutes: read-only schedule listing for the member site.
func ExamSchedulePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.ExamScheduleController{DB: db}

	schedules := r.Group("/exam-schedules")
	schedules.Get("/", ctrl.List)
	schedules.Get("/:id", ctrl.GetByID)
}

// ExamScheduleAdminRoutes: back-office schedule management.
func ExamScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.ExamScheduleController{DB: db}

	schedules := r.Group("/exam-schedules")
	schedules.Get("/", ctrl.List)
	schedules.Get("/:id", ctrl.GetByID)
	schedules.Post("/", ctrl.Create)
	schedules.Put("/:id", ctrl.Update)
	schedules.Patch("/:id/status", ctrl.UpdateStatus)
	schedules.Delete("/:id", ctrl.Delete)
}
