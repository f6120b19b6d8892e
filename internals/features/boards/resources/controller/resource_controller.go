package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "certassoc_backend/internals/features/boards/resources/dto"
	model "certassoc_backend/internals/features/boards/resources/model"
	helper "certassoc_backend/internals/helpers"
	"certassoc_backend/internals/helpers/oss"
)

type ResourceController struct {
	DB   *gorm.DB
	Blob oss.BlobService
}

// =========================================================
// LIST - GET /resources?category=&search=
// =========================================================
func (ctrl *ResourceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ResourceModel{})
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("resource_category = ?", category)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("resource_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count resources")
	}

	var rows []model.ResourceModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load resources")
	}

	resp := make([]dto.ResourceResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToResourceResponse(&rows[i]))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET - GET /resources/:id
// =========================================================
func (ctrl *ResourceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.ResourceModel
	if err := ctrl.DB.First(&row, "resource_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load resource")
	}
	return helper.JsonOK(c, "", dto.ToResourceResponse(&row))
}

// =========================================================
// DOWNLOAD - POST /resources/:id/download
// Bumps the counter and hands back the file URL; the client follows it.
// =========================================================
func (ctrl *ResourceController) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.ResourceModel
	if err := ctrl.DB.First(&row, "resource_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load resource")
	}

	if err := ctrl.DB.Model(&model.ResourceModel{}).
		Where("resource_id = ?", id).
		UpdateColumn("resource_download_count", gorm.Expr("resource_download_count + 1")).Error; err == nil {
		row.ResourceDownloadCount++
	}

	return helper.JsonOK(c, "", fiber.Map{
		"resource_file_url":       row.ResourceFileURL,
		"resource_file_name":      row.ResourceFileName,
		"resource_download_count": row.ResourceDownloadCount,
	})
}

// =========================================================
// CREATE - POST /resources (admin, multipart: title, description?, category?, file)
// =========================================================
func (ctrl *ResourceController) Create(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "title is required")
	}
	var description, category *string
	if d := strings.TrimSpace(c.FormValue("description")); d != "" {
		description = &d
	}
	if cat := strings.TrimSpace(c.FormValue("category")); cat != "" {
		category = &cat
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}

	fileURL, _, err := ctrl.Blob.UploadRaw(c.Context(), "resources", fh)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	m := &model.ResourceModel{
		ResourceTitle:       title,
		ResourceDescription: description,
		ResourceCategory:    category,
		ResourceFileURL:     fileURL,
		ResourceFileName:    fh.Filename,
		ResourceFileSize:    fh.Size,
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		if delErr := ctrl.Blob.DeleteByPublicURL(c.Context(), fileURL); delErr != nil {
			log.Printf("[RESOURCE] orphan cleanup failed: %v", delErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create resource")
	}
	return helper.JsonCreated(c, "Resource created", dto.ToResourceResponse(m))
}

// =========================================================
// DELETE - DELETE /resources/:id (admin)
// Object-store deletion is best-effort: the row goes either way.
// =========================================================
func (ctrl *ResourceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.ResourceModel
	if err := ctrl.DB.First(&row, "resource_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load resource")
	}

	if err := ctrl.DB.Delete(&model.ResourceModel{}, "resource_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete resource")
	}

	if err := ctrl.Blob.DeleteByPublicURL(c.Context(), row.ResourceFileURL); err != nil {
		log.Printf("[RESOURCE] object delete failed for %s: %v", row.ResourceFileURL, err)
	}
	return helper.JsonDeleted(c, "Resource deleted", fiber.Map{"deleted_id": id})
}
