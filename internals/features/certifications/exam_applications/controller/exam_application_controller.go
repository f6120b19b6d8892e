package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certModel "certassoc_backend/internals/features/certifications/certification/model"
	dto "certassoc_backend/internals/features/certifications/exam_applications/dto"
	model "certassoc_backend/internals/features/certifications/exam_applications/model"
	"certassoc_backend/internals/features/certifications/exam_applications/service"
	scheduleModel "certassoc_backend/internals/features/certifications/exam_schedules/model"
	helper "certassoc_backend/internals/helpers"
	"certassoc_backend/internals/helpers/mailer"
)

type ExamApplicationController struct {
	DB *gorm.DB
}

var validate = validator.New()

func serviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		return fiber.StatusNotFound, "Exam schedule not found"
	case errors.Is(err, service.ErrApplicationNotFound):
		return fiber.StatusNotFound, "Exam application not found"
	case errors.Is(err, service.ErrRegistrationClosed):
		return fiber.StatusBadRequest, "Registration is not open for this schedule"
	case errors.Is(err, service.ErrCapacityExceeded):
		return fiber.StatusConflict, "Exam schedule is full"
	case errors.Is(err, service.ErrDuplicateApplication):
		return fiber.StatusConflict, "You already applied to this schedule"
	case errors.Is(err, service.ErrAlreadyCancelled):
		return fiber.StatusConflict, "Application is already cancelled"
	case errors.Is(err, service.ErrPaymentNotPending):
		return fiber.StatusConflict, "Payment is not pending"
	case errors.Is(err, service.ErrPassNotAllowed):
		return fiber.StatusConflict, "Pass status cannot be set yet"
	case errors.Is(err, service.ErrInvalidStatus):
		return fiber.StatusBadRequest, "Unknown application status"
	}
	return fiber.StatusInternalServerError, "Internal error"
}

// =========================================================
// SUBMIT - POST /exam-applications (member)
// =========================================================
func (ctrl *ExamApplicationController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ExamApplicationSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	scheduleID, err := uuid.Parse(req.ExamScheduleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam_schedule_id")
	}

	app, err := service.Submit(ctrl.DB, time.Now(), service.SubmitInput{
		ExamScheduleID: scheduleID,
		UserID:         userID,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		BirthDate:      req.BirthDateTime(),
		Address:        req.Address,
		PaymentMethod:  req.PaymentMethod,
	})
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}

	if app.ExamApplicationEmail != nil {
		mailer.SendAsync(app.ExamApplicationName, *app.ExamApplicationEmail,
			"Exam application received",
			"Your exam application has been received and is awaiting payment.")
	}
	return helper.JsonCreated(c, "Exam application submitted", dto.ToExamApplicationResponse(app))
}

// =========================================================
// MY LIST - GET /exam-applications (member)
// =========================================================
func (ctrl *ExamApplicationController) MyList(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ExamApplicationModel{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	var rows []model.ExamApplicationModel
	if err := q.Order("exam_application_submitted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load applications")
	}

	return helper.JsonList(c, "", ctrl.decorate(rows), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// MY CANCEL - POST /exam-applications/:id/cancel (member)
// =========================================================
func (ctrl *ExamApplicationController) CancelMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	app, err := service.Cancel(ctrl.DB, time.Now(), id, &userID)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "Exam application cancelled", dto.ToExamApplicationResponse(app))
}

// =========================================================
// ADMIN LIST - GET /exam-applications?exam_schedule_id=&certification_id=&status=&payment_status=&search=
// =========================================================
func (ctrl *ExamApplicationController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ExamApplicationModel{})
	if v := strings.TrimSpace(c.Query("exam_schedule_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam_schedule_id")
		}
		q = q.Where("exam_schedule_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("certification_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid certification_id")
		}
		q = q.Where("certification_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("exam_application_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("payment_status")); v != "" {
		q = q.Where("exam_application_pay_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		pattern := "%" + v + "%"
		q = q.Where("exam_application_name ILIKE ? OR exam_application_phone ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	var rows []model.ExamApplicationModel
	if err := q.Order("exam_application_submitted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load applications")
	}

	return helper.JsonList(c, "", ctrl.decorate(rows), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// ADMIN GET - GET /exam-applications/:id
// =========================================================
func (ctrl *ExamApplicationController) AdminGetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.ExamApplicationModel
	if err := ctrl.DB.First(&row, "exam_application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load application")
	}
	decorated := ctrl.decorate([]model.ExamApplicationModel{row})
	return helper.JsonOK(c, "", decorated[0])
}

// =========================================================
// ADMIN PATCH /exam-applications/:id/payment - confirm payment
// =========================================================
func (ctrl *ExamApplicationController) ConfirmPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	app, err := service.ConfirmPayment(ctrl.DB, id)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}

	if app.ExamApplicationEmail != nil {
		mailer.SendAsync(app.ExamApplicationName, *app.ExamApplicationEmail,
			"Exam fee payment confirmed",
			"Your exam fee payment has been confirmed. Your seat is secured.")
	}
	return helper.JsonUpdated(c, "Payment confirmed", dto.ToExamApplicationResponse(app))
}

// =========================================================
// ADMIN PATCH /exam-applications/:id/pass - record result
// =========================================================
func (ctrl *ExamApplicationController) SetPassStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.ExamApplicationPassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	app, err := service.SetPassStatus(ctrl.DB, id, req.Passed)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "Pass status updated", dto.ToExamApplicationResponse(app))
}

// =========================================================
// ADMIN PATCH /exam-applications/:id/status - lifecycle move
// =========================================================
func (ctrl *ExamApplicationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.ExamApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	app, err := service.UpdateStatus(ctrl.DB, id, req.Status)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "Application status updated", dto.ToExamApplicationResponse(app))
}

// =========================================================
// ADMIN POST /exam-applications/:id/cancel
// =========================================================
func (ctrl *ExamApplicationController) AdminCancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	app, err := service.Cancel(ctrl.DB, time.Now(), id, nil)
	if err != nil {
		status, msg := serviceErrorStatus(err)
		return helper.JsonError(c, status, msg)
	}
	return helper.JsonUpdated(c, "Exam application cancelled", dto.ToExamApplicationResponse(app))
}

// decorate joins certification names and exam dates onto one page of rows.
func (ctrl *ExamApplicationController) decorate(rows []model.ExamApplicationModel) []dto.ExamApplicationResponse {
	resp := make([]dto.ExamApplicationResponse, 0, len(rows))
	if len(rows) == 0 {
		return resp
	}

	certIDs := make([]uuid.UUID, 0, len(rows))
	schedIDs := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		certIDs = append(certIDs, rows[i].CertificationID)
		schedIDs = append(schedIDs, rows[i].ExamScheduleID)
	}

	nameByID := map[uuid.UUID]string{}
	var certs []certModel.CertificationModel
	if err := ctrl.DB.Where("certification_id IN ?", certIDs).Find(&certs).Error; err == nil {
		for i := range certs {
			nameByID[certs[i].CertificationID] = certs[i].CertificationName
		}
	}
	dateByID := map[uuid.UUID]time.Time{}
	var scheds []scheduleModel.ExamScheduleModel
	if err := ctrl.DB.Where("exam_schedule_id IN ?", schedIDs).Find(&scheds).Error; err == nil {
		for i := range scheds {
			dateByID[scheds[i].ExamScheduleID] = scheds[i].ExamScheduleExamDate
		}
	}

	for i := range rows {
		r := dto.ToExamApplicationResponse(&rows[i])
		r.CertificationName = nameByID[rows[i].CertificationID]
		if d, ok := dateByID[rows[i].ExamScheduleID]; ok {
			dd := d
			r.ExamDate = &dd
		}
		resp = append(resp, r)
	}
	return resp
}
