package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryRoute "certassoc_backend/internals/features/boards/gallery/route"
	noticeRoute "certassoc_backend/internals/features/boards/notices/route"
	resourceRoute "certassoc_backend/internals/features/boards/resources/route"
	certRoute "certassoc_backend/internals/features/certifications/certification/route"
	examScheduleRoute "certassoc_backend/internals/features/certifications/exam_schedules/route"
	courseScheduleRoute "certassoc_backend/internals/features/education/course_schedules/route"
	courseRoute "certassoc_backend/internals/features/education/courses/route"
	"certassoc_backend/internals/helpers/oss"
)

// PublicRoutes: unauthenticated read-only surface of the member site.
func PublicRoutes(r fiber.Router, db *gorm.DB, blob oss.BlobService) {
	certRoute.CertificationPublicRoutes(r, db)
	examScheduleRoute.ExamSchedulePublicRoutes(r, db)
	courseRoute.CoursePublicRoutes(r, db)
	courseScheduleRoute.CourseSchedulePublicRoutes(r, db)
	noticeRoute.NoticePublicRoutes(r, db)
	galleryRoute.GalleryPublicRoutes(r, db, blob)
	resourceRoute.ResourcePublicRoutes(r, db, blob)
}
