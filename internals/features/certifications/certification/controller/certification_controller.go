package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "certassoc_backend/internals/features/certifications/certification/dto"
	model "certassoc_backend/internals/features/certifications/certification/model"
	scheduleModel "certassoc_backend/internals/features/certifications/exam_schedules/model"
	helper "certassoc_backend/internals/helpers"
)

type CertificationController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// LIST - GET /certifications?status=&search=&page=&per_page=
// Public listing defaults to active; admins pass status explicitly.
// =========================================================
func (ctrl *CertificationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CertificationModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("certification_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("certification_name ILIKE ? OR certification_registration_number ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count certifications")
	}

	var rows []model.CertificationModel
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load certifications")
	}

	resp := make([]dto.CertificationResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToCertificationResponse(&rows[i]))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET BY ID - GET /certifications/:id
// =========================================================
func (ctrl *CertificationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.CertificationModel
	if err := ctrl.DB.First(&row, "certification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load certification")
	}
	return helper.JsonOK(c, "", dto.ToCertificationResponse(&row))
}

// =========================================================
// CREATE - POST /certifications (admin)
// passing_criteria is persisted exactly as submitted (JSON or legacy text).
// =========================================================
func (ctrl *CertificationController) Create(c *fiber.Ctx) error {
	var req dto.CertificationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if msg := req.ValidateMethods(); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Registration number is already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create certification")
	}
	return helper.JsonCreated(c, "Certification created", dto.ToCertificationResponse(m))
}

// =========================================================
// UPDATE - PUT /certifications/:id (admin)
// =========================================================
func (ctrl *CertificationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CertificationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if msg := req.ValidateMethods(); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var row model.CertificationModel
	if err := ctrl.DB.First(&row, "certification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load certification")
	}

	req.ApplyToModel(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Registration number is already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update certification")
	}
	return helper.JsonUpdated(c, "Certification updated", dto.ToCertificationResponse(&row))
}

// =========================================================
// DELETE - DELETE /certifications/:id (admin, hard delete)
// RESTRICT: refused while exam schedules still reference the row.
// =========================================================
func (ctrl *CertificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var scheduleCount int64
	if err := ctrl.DB.Model(&scheduleModel.ExamScheduleModel{}).
		Where("certification_id = ?", id).Count(&scheduleCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check schedules")
	}
	if scheduleCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Certification still has exam schedules; delete them first")
	}

	res := ctrl.DB.Delete(&model.CertificationModel{}, "certification_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete certification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Certification not found")
	}
	return helper.JsonDeleted(c, "Certification deleted", fiber.Map{"deleted_id": id})
}
