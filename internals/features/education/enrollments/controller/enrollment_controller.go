package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "certassoc_backend/internals/features/education/course_schedules/model"
	courseModel "certassoc_backend/internals/features/education/courses/model"
	dto "certassoc_backend/internals/features/education/enrollments/dto"
	model "certassoc_backend/internals/features/education/enrollments/model"
	"certassoc_backend/internals/features/education/enrollments/service"
	helper "certassoc_backend/internals/helpers"
	"certassoc_backend/internals/helpers/mailer"
)

type EnrollmentController struct {
	DB *gorm.DB
}

var validate = validator.New()

func serviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		return fiber.StatusNotFound, "Course schedule not found"
	case errors.Is(err, service.ErrEnrollmentNotFound):
		return fiber.StatusNotFound, "Enrollment not found"
	case errors.Is(err, service.ErrRegistrationClosed):
		return fiber.StatusBadRequest, "Registration is not open for this schedule"
	case errors.Is(err, service.ErrCapacityExceeded):
		return fiber.StatusConflict, "Course schedule is full"
	case errors.Is(err, service.ErrDuplicateEnrollment):
		return fiber.StatusConflict, "You already enrolled in this schedule"
	case errors.Is(err, service.ErrAlreadyCancelled):
		return fiber.StatusConflict, "Enrollment is already cancelled"
	case errors.Is(err, service.ErrPaymentNotPending):
		return fiber.StatusConflict, "Payment is not pending"
	case errors.Is(err, service.ErrCompletionNotOpen):
		return fiber.StatusConflict, "Completion status can only change on a confirmed enrollment"
	case errors.Is(err, service.ErrInvalidStatus):
		return fiber.StatusBadRequest, "Unknown completion status"
	}
	return fiber.StatusInternalServerError, "Internal error"
}

// =========================================================
// ENROLL - POST /enrollments (member)
// =========================================================
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.EnrollmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	scheduleID, err := uuid.Parse(req.CourseScheduleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_schedule_id")
	}

	enr, err := service.Enroll(ctrl.DB, time.Now(), service.EnrollInput{
		CourseScheduleID: scheduleID,
		UserID:           userID,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Organization:     req.Organization,
	})
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}

	if enr.EnrollmentEmail != nil {
		mailer.SendAsync(enr.EnrollmentName, *enr.EnrollmentEmail,
			"Course enrollment received",
			"Your course enrollment has been received and is awaiting payment.")
	}
	return helper.JsonCreated(c, "Enrollment submitted", dto.ToEnrollmentResponse(enr))
}

// =========================================================
// MY LIST - GET /enrollments (member)
// =========================================================
func (ctrl *EnrollmentController) MyList(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EnrollmentModel{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var rows []model.EnrollmentModel
	if err := q.Order("enrollment_applied_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load enrollments")
	}

	return helper.JsonList(c, "", ctrl.decorate(rows), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// MY CANCEL - POST /enrollments/:id/cancel (member)
// =========================================================
func (ctrl *EnrollmentController) CancelMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	enr, err := service.Cancel(ctrl.DB, time.Now(), id, &userID)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "Enrollment cancelled", dto.ToEnrollmentResponse(enr))
}

// =========================================================
// ADMIN LIST - GET /enrollments?course_schedule_id=&course_id=&status=&payment_status=&search=
// =========================================================
func (ctrl *EnrollmentController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EnrollmentModel{})
	if v := strings.TrimSpace(c.Query("course_schedule_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_schedule_id")
		}
		q = q.Where("course_schedule_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("course_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_id")
		}
		q = q.Where("course_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("enrollment_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("payment_status")); v != "" {
		q = q.Where("enrollment_pay_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		pattern := "%" + v + "%"
		q = q.Where("enrollment_name ILIKE ? OR enrollment_phone ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var rows []model.EnrollmentModel
	if err := q.Order("enrollment_applied_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load enrollments")
	}

	return helper.JsonList(c, "", ctrl.decorate(rows), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// ADMIN GET - GET /enrollments/:id
// =========================================================
func (ctrl *EnrollmentController) AdminGetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.EnrollmentModel
	if err := ctrl.DB.First(&row, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load enrollment")
	}
	decorated := ctrl.decorate([]model.EnrollmentModel{row})
	return helper.JsonOK(c, "", decorated[0])
}

// =========================================================
// ADMIN PATCH /enrollments/:id/payment - confirm payment
// =========================================================
func (ctrl *EnrollmentController) ConfirmPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	enr, err := service.ConfirmPayment(ctrl.DB, id)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}

	if enr.EnrollmentEmail != nil {
		mailer.SendAsync(enr.EnrollmentName, *enr.EnrollmentEmail,
			"Course fee payment confirmed",
			"Your course fee payment has been confirmed. Your seat is secured.")
	}
	return helper.JsonUpdated(c, "Payment confirmed", dto.ToEnrollmentResponse(enr))
}

// =========================================================
// ADMIN PATCH /enrollments/:id/completion - training outcome
// =========================================================
func (ctrl *EnrollmentController) SetCompletionStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.EnrollmentCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	enr, err := service.SetCompletionStatus(ctrl.DB, id, req.CompletionStatus)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "Completion status updated", dto.ToEnrollmentResponse(enr))
}

// =========================================================
// ADMIN POST /enrollments/:id/cancel
// =========================================================
func (ctrl *EnrollmentController) AdminCancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	enr, err := service.Cancel(ctrl.DB, time.Now(), id, nil)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "Enrollment cancelled", dto.ToEnrollmentResponse(enr))
}

// decorate joins course names and start dates onto one page of rows.
func (ctrl *EnrollmentController) decorate(rows []model.EnrollmentModel) []dto.EnrollmentResponse {
	resp := make([]dto.EnrollmentResponse, 0, len(rows))
	if len(rows) == 0 {
		return resp
	}

	courseIDs := make([]uuid.UUID, 0, len(rows))
	schedIDs := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		courseIDs = append(courseIDs, rows[i].CourseID)
		schedIDs = append(schedIDs, rows[i].CourseScheduleID)
	}

	nameByID := map[uuid.UUID]string{}
	var courses []courseModel.CourseModel
	if err := ctrl.DB.Where("course_id IN ?", courseIDs).Find(&courses).Error; err == nil {
		for i := range courses {
			nameByID[courses[i].CourseID] = courses[i].CourseName
		}
	}
	startByID := map[uuid.UUID]time.Time{}
	var scheds []scheduleModel.CourseScheduleModel
	if err := ctrl.DB.Where("course_schedule_id IN ?", schedIDs).Find(&scheds).Error; err == nil {
		for i := range scheds {
			startByID[scheds[i].CourseScheduleID] = scheds[i].CourseScheduleStartDate
		}
	}

	for i := range rows {
		r := dto.ToEnrollmentResponse(&rows[i])
		r.CourseName = nameByID[rows[i].CourseID]
		if d, ok := startByID[rows[i].CourseScheduleID]; ok {
			dd := d
			r.StartDate = &dd
		}
		resp = append(resp, r)
	}
	return resp
}
