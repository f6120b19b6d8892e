package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/certifications/exam_applications/controller"
)

// ExamApplicationUserRoutes: member self-service, mounted behind auth.
func ExamApplicationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.ExamApplicationController{DB: db}

	apps := r.Group("/exam-applications")
	apps.Post("/", ctrl.Submit)
	apps.Get("/", ctrl.MyList)
	apps.Post("/:id/cancel", ctrl.CancelMine)
}

// ExamApplicationAdminRoutes: back-office application management.
func ExamApplicationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.ExamApplicationController{DB: db}

	apps := r.Group("/exam-applications")
	apps.Get("/", ctrl.AdminList)
	apps.Get("/:id", ctrl.AdminGetByID)
	apps.Patch("/:id/payment", ctrl.ConfirmPayment)
	apps.Patch("/:id/pass", ctrl.SetPassStatus)
	apps.Patch("/:id/status", ctrl.UpdateStatus)
	apps.Post("/:id/cancel", ctrl.AdminCancel)
}
