package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryRoute "certassoc_backend/internals/features/boards/gallery/route"
	noticeRoute "certassoc_backend/internals/features/boards/notices/route"
	qnaRoute "certassoc_backend/internals/features/boards/qna/route"
	resourceRoute "certassoc_backend/internals/features/boards/resources/route"
	certRoute "certassoc_backend/internals/features/certifications/certification/route"
	examAppRoute "certassoc_backend/internals/features/certifications/exam_applications/route"
	examScheduleRoute "certassoc_backend/internals/features/certifications/exam_schedules/route"
	dashboardRoute "certassoc_backend/internals/features/dashboard/route"
	courseScheduleRoute "certassoc_backend/internals/features/education/course_schedules/route"
	courseRoute "certassoc_backend/internals/features/education/courses/route"
	enrollRoute "certassoc_backend/internals/features/education/enrollments/route"
	adminRoute "certassoc_backend/internals/features/users/admin/route"
	userRoute "certassoc_backend/internals/features/users/user/route"
	"certassoc_backend/internals/helpers/oss"
)

// AdminRoutes: the whole back-office surface; the group already enforces
// admin-and-above.
func AdminRoutes(r fiber.Router, db *gorm.DB, blob oss.BlobService) {
	dashboardRoute.DashboardAdminRoutes(r, db)

	certRoute.CertificationAdminRoutes(r, db)
	examScheduleRoute.ExamScheduleAdminRoutes(r, db)
	examAppRoute.ExamApplicationAdminRoutes(r, db)

	courseRoute.CourseAdminRoutes(r, db)
	courseScheduleRoute.CourseScheduleAdminRoutes(r, db)
	enrollRoute.EnrollmentAdminRoutes(r, db)

	noticeRoute.NoticeAdminRoutes(r, db)
	qnaRoute.QnaAdminRoutes(r, db)
	galleryRoute.GalleryAdminRoutes(r, db, blob)
	resourceRoute.ResourceAdminRoutes(r, db, blob)

	userRoute.AdminUserRoutes(r, db)
	adminRoute.AdminAccountRoutes(r, db)
}
