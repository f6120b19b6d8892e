package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "certassoc_backend/internals/features/boards/notices/dto"
	model "certassoc_backend/internals/features/boards/notices/model"
	helper "certassoc_backend/internals/helpers"
)

type NoticeController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// PUBLIC LIST - GET /notices?category=&search=
// Published only; pinned notices sort above the rest.
// =========================================================
func (ctrl *NoticeController) PublicList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NoticeModel{}).Where("notice_is_published = ?", true)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("notice_category = ?", category)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("notice_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notices")
	}

	var rows []model.NoticeModel
	if err := q.Order("notice_is_pinned DESC, created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notices")
	}

	resp := make([]dto.NoticeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToNoticeResponse(&rows[i], false))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// PUBLIC GET - GET /notices/:id - bumps the view counter
// =========================================================
func (ctrl *NoticeController) PublicGetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.NoticeModel
	if err := ctrl.DB.First(&row, "notice_id = ? AND notice_is_published = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notice")
	}

	// Atomic increment; the read below shows the bumped count.
	if err := ctrl.DB.Model(&model.NoticeModel{}).
		Where("notice_id = ?", id).
		UpdateColumn("notice_view_count", gorm.Expr("notice_view_count + 1")).Error; err == nil {
		row.NoticeViewCount++
	}
	return helper.JsonOK(c, "", dto.ToNoticeResponse(&row, true))
}

// =========================================================
// ADMIN LIST - GET /notices?category=&published=&search=
// =========================================================
func (ctrl *NoticeController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NoticeModel{})
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("notice_category = ?", category)
	}
	if published := strings.TrimSpace(c.Query("published")); published != "" {
		q = q.Where("notice_is_published = ?", published == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("notice_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notices")
	}

	var rows []model.NoticeModel
	if err := q.Order("notice_is_pinned DESC, created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notices")
	}

	resp := make([]dto.NoticeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToNoticeResponse(&rows[i], false))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// ADMIN GET - GET /notices/:id (no view bump)
// =========================================================
func (ctrl *NoticeController) AdminGetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.NoticeModel
	if err := ctrl.DB.First(&row, "notice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notice")
	}
	return helper.JsonOK(c, "", dto.ToNoticeResponse(&row, true))
}

// =========================================================
// CREATE - POST /notices (admin)
// =========================================================
func (ctrl *NoticeController) Create(c *fiber.Ctx) error {
	var req dto.NoticeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if m.NoticeAuthor == nil {
		if name := helper.GetUserName(c); name != "" {
			m.NoticeAuthor = &name
		}
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notice")
	}
	return helper.JsonCreated(c, "Notice created", dto.ToNoticeResponse(m, true))
}

// =========================================================
// UPDATE - PUT /notices/:id (admin)
// =========================================================
func (ctrl *NoticeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.NoticeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.NoticeModel
	if err := ctrl.DB.First(&row, "notice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notice")
	}

	req.ApplyToModel(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notice")
	}
	return helper.JsonUpdated(c, "Notice updated", dto.ToNoticeResponse(&row, true))
}

// =========================================================
// DELETE - DELETE /notices/:id (admin)
// =========================================================
func (ctrl *NoticeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Delete(&model.NoticeModel{}, "notice_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notice")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
	}
	return helper.JsonDeleted(c, "Notice deleted", fiber.Map{"deleted_id": id})
}
