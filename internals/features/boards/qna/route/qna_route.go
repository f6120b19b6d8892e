package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "certassoc_backend/internals/features/boards/qna/controller"
)

// QnaUserRoutes: question board for members, mounted behind auth so secret
// questions can check ownership.
func QnaUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.QnaController{DB: db}

	qna := r.Group("/qna")
	qna.Get("/", ctrl.List)
	qna.Get("/:id", ctrl.GetByID)
	qna.Post("/", ctrl.Create)
	qna.Delete("/:id", ctrl.Delete)
}

// QnaAdminRoutes: back-office answers and moderation.
func QnaAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.QnaController{DB: db}

	qna := r.Group("/qna")
	qna.Get("/", ctrl.List)
	qna.Get("/:id", ctrl.GetByID)
	qna.Delete("/:id", ctrl.Delete)
	qna.Post("/:id/answers", ctrl.CreateAnswer)
	qna.Delete("/answers/:answerId", ctrl.DeleteAnswer)
}
