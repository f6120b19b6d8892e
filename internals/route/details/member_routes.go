package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qnaRoute "certassoc_backend/internals/features/boards/qna/route"
	examAppRoute "certassoc_backend/internals/features/certifications/exam_applications/route"
	enrollRoute "certassoc_backend/internals/features/education/enrollments/route"
	userRoute "certassoc_backend/internals/features/users/user/route"
)

// MemberRoutes: authenticated member self-service surface.
func MemberRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(r, db)
	examAppRoute.ExamApplicationUserRoutes(r, db)
	enrollRoute.EnrollmentUserRoutes(r, db)
	qnaRoute.QnaUserRoutes(r, db)
}
