package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/education/enrollments/controller"
)

// EnrollmentUserRoutes: member self-service, mounted behind auth.
func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.EnrollmentController{DB: db}

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctrl.Enroll)
	enrollments.Get("/", ctrl.MyList)
	enrollments.Post("/:id/cancel", ctrl.CancelMine)
}

// EnrollmentAdminRoutes: back-office enrollment management.
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.EnrollmentController{DB: db}

	enrollments := r.Group("/enrollments")
	enrollments.Get("/", ctrl.AdminList)
	enrollments.Get("/:id", ctrl.AdminGetByID)
	enrollments.Patch("/:id/payment", ctrl.ConfirmPayment)
	enrollments.Patch("/:id/completion", ctrl.SetCompletionStatus)
	enrollments.Post("/:id/cancel", ctrl.AdminCancel)
}
