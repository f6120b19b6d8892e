package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qnaModel "certassoc_backend/internals/features/boards/qna/model"
	certModel "certassoc_backend/internals/features/certifications/certification/model"
	appDto "certassoc_backend/internals/features/certifications/exam_applications/dto"
	appModel "certassoc_backend/internals/features/certifications/exam_applications/model"
	scheduleModel "certassoc_backend/internals/features/certifications/exam_schedules/model"
	courseModel "certassoc_backend/internals/features/education/courses/model"
	enrollModel "certassoc_backend/internals/features/education/enrollments/model"
	userModel "certassoc_backend/internals/features/users/user/model"
	helper "certassoc_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

// =========================================================
// GET /dashboard - entity totals + the latest applications,
// the numbers the back-office landing page shows.
// =========================================================
func (ctrl *DashboardController) Summary(c *fiber.Ctx) error {
	counts := fiber.Map{}

	count := func(key string, q *gorm.DB) error {
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return err
		}
		counts[key] = n
		return nil
	}

	if err := count("users", ctrl.DB.Model(&userModel.UserModel{}).Where("user_status <> ?", "deleted")); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
	}
	if err := count("certifications", ctrl.DB.Model(&certModel.CertificationModel{})); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
	}
	if err := count("exam_schedules", ctrl.DB.Model(&scheduleModel.ExamScheduleModel{})); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
	}
	if err := count("exam_applications", ctrl.DB.Model(&appModel.ExamApplicationModel{})); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
	}
	if err := count("pending_payments", ctrl.DB.Model(&appModel.ExamApplicationModel{}).
		Where("exam_application_pay_status = ?", appModel.PayStatusPending).
		Where("exam_application_status <> ?", appModel.AppStatusCancelled)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
	}
	if err := count("courses", ctrl.DB.Model(&courseModel.CourseModel{})); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
	}
	if err := count("enrollments", ctrl.DB.Model(&enrollModel.EnrollmentModel{})); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
	}
	if err := count("unanswered_questions", ctrl.DB.Model(&qnaModel.QnaQuestionModel{}).
		Where("qna_question_is_answered = ?", false)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard counts")
	}

	var recent []appModel.ExamApplicationModel
	if err := ctrl.DB.Order("exam_application_submitted_at DESC").
		Limit(5).Find(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load recent applications")
	}
	recentResp := make([]appDto.ExamApplicationResponse, 0, len(recent))
	for i := range recent {
		recentResp = append(recentResp, appDto.ToExamApplicationResponse(&recent[i]))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"counts":              counts,
		"recent_applications": recentResp,
	})
}
