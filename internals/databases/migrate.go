package database

import (
	"log"

	"gorm.io/gorm"

	galleryModel "certassoc_backend/internals/features/boards/gallery/model"
	noticeModel "certassoc_backend/internals/features/boards/notices/model"
	qnaModel "certassoc_backend/internals/features/boards/qna/model"
	resourceModel "certassoc_backend/internals/features/boards/resources/model"
	certModel "certassoc_backend/internals/features/certifications/certification/model"
	examAppModel "certassoc_backend/internals/features/certifications/exam_applications/model"
	examScheduleModel "certassoc_backend/internals/features/certifications/exam_schedules/model"
	courseScheduleModel "certassoc_backend/internals/features/education/course_schedules/model"
	courseModel "certassoc_backend/internals/features/education/courses/model"
	enrollModel "certassoc_backend/internals/features/education/enrollments/model"
	adminModel "certassoc_backend/internals/features/users/admin/model"
	authModel "certassoc_backend/internals/features/users/auth/model"
	userModel "certassoc_backend/internals/features/users/user/model"
)

// MigrateAll keeps the schema in sync with the models. Ordered so referenced
// tables exist before their dependents.
func MigrateAll(db *gorm.DB) {
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&adminModel.AdminModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},

		&certModel.CertificationModel{},
		&examScheduleModel.ExamScheduleModel{},
		&examAppModel.ExamApplicationModel{},

		&courseModel.CourseModel{},
		&courseScheduleModel.CourseScheduleModel{},
		&enrollModel.EnrollmentModel{},

		&noticeModel.NoticeModel{},
		&qnaModel.QnaQuestionModel{},
		&qnaModel.QnaAnswerModel{},
		&galleryModel.GalleryModel{},
		&resourceModel.ResourceModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database schema is up to date")
}
