package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certModel "certassoc_backend/internals/features/certifications/certification/model"
	appModel "certassoc_backend/internals/features/certifications/exam_applications/model"
	dto "certassoc_backend/internals/features/certifications/exam_schedules/dto"
	model "certassoc_backend/internals/features/certifications/exam_schedules/model"
	helper "certassoc_backend/internals/helpers"
)

type ExamScheduleController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// LIST - GET /exam-schedules?certification_id=&status=
// =========================================================
func (ctrl *ExamScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ExamScheduleModel{})
	if certID := strings.TrimSpace(c.Query("certification_id")); certID != "" {
		id, err := uuid.Parse(certID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid certification_id")
		}
		q = q.Where("certification_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("exam_schedule_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var rows []model.ExamScheduleModel
	if err := q.Order("exam_schedule_exam_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedules")
	}

	// one lookup for the certification names on this page
	nameByID := map[uuid.UUID]*certModel.CertificationModel{}
	if len(rows) > 0 {
		ids := make([]uuid.UUID, 0, len(rows))
		for i := range rows {
			ids = append(ids, rows[i].CertificationID)
		}
		var certs []certModel.CertificationModel
		if err := ctrl.DB.Where("certification_id IN ?", ids).Find(&certs).Error; err == nil {
			for i := range certs {
				nameByID[certs[i].CertificationID] = &certs[i]
			}
		}
	}

	resp := make([]dto.ExamScheduleResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToExamScheduleResponse(&rows[i], nameByID[rows[i].CertificationID]))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET BY ID - GET /exam-schedules/:id
// =========================================================
func (ctrl *ExamScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.ExamScheduleModel
	if err := ctrl.DB.First(&row, "exam_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	var cert certModel.CertificationModel
	certPtr := &cert
	if err := ctrl.DB.First(&cert, "certification_id = ?", row.CertificationID).Error; err != nil {
		certPtr = nil
	}
	return helper.JsonOK(c, "", dto.ToExamScheduleResponse(&row, certPtr))
}

// =========================================================
// CREATE - POST /exam-schedules (admin)
// Date order is enforced server-side on every write.
// =========================================================
func (ctrl *ExamScheduleController) Create(c *fiber.Ctx) error {
	var req dto.ExamScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if msg := dto.ValidateDateOrder(
		req.ExamScheduleRegistrationStart,
		req.ExamScheduleRegistrationEnd,
		req.ExamScheduleExamDate,
		req.ExamScheduleResultDate,
	); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var cert certModel.CertificationModel
	if err := ctrl.DB.First(&cert, "certification_id = ?", req.CertificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load certification")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.JsonCreated(c, "Exam schedule created", dto.ToExamScheduleResponse(m, &cert))
}

// =========================================================
// UPDATE - PUT /exam-schedules/:id (admin)
// =========================================================
func (ctrl *ExamScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.ExamScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.ExamScheduleModel
	if err := ctrl.DB.First(&row, "exam_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	req.ApplyToModel(&row)
	if msg := dto.ValidateDateOrder(
		row.ExamScheduleRegistrationStart,
		row.ExamScheduleRegistrationEnd,
		row.ExamScheduleExamDate,
		row.ExamScheduleResultDate,
	); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}
	if row.ExamScheduleMaxApplicants < row.ExamScheduleCurrentApplicants {
		return helper.JsonError(c, fiber.StatusBadRequest, "max_applicants cannot drop below the current applicant count")
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}
	return helper.JsonUpdated(c, "Exam schedule updated", dto.ToExamScheduleResponse(&row, nil))
}

// =========================================================
// PATCH /exam-schedules/:id/status (admin) - workflow form field
// =========================================================
func (ctrl *ExamScheduleController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if !model.IsValidStatus(body.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown schedule status")
	}

	res := ctrl.DB.Model(&model.ExamScheduleModel{}).
		Where("exam_schedule_id = ?", id).
		Update("exam_schedule_status", body.Status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam schedule not found")
	}
	return helper.JsonUpdated(c, "Schedule status updated", fiber.Map{"exam_schedule_status": body.Status})
}

// =========================================================
// DELETE - DELETE /exam-schedules/:id (admin)
// RESTRICT: refused while applications still reference the schedule, so
// rows are never orphaned.
// =========================================================
func (ctrl *ExamScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var appCount int64
	if err := ctrl.DB.Model(&appModel.ExamApplicationModel{}).
		Where("exam_schedule_id = ?", id).Count(&appCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check applications")
	}
	if appCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Schedule still has applications; cancel them first")
	}

	res := ctrl.DB.Delete(&model.ExamScheduleModel{}, "exam_schedule_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam schedule not found")
	}
	return helper.JsonDeleted(c, "Exam schedule deleted", fiber.Map{"deleted_id": id})
}
