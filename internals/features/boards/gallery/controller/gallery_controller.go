package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "certassoc_backend/internals/features/boards/gallery/dto"
	model "certassoc_backend/internals/features/boards/gallery/model"
	helper "certassoc_backend/internals/helpers"
	"certassoc_backend/internals/helpers/oss"
)

type GalleryController struct {
	DB   *gorm.DB
	Blob oss.BlobService
}

// =========================================================
// LIST - GET /gallery
// =========================================================
func (ctrl *GalleryController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.GalleryModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("gallery_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count gallery posts")
	}

	var rows []model.GalleryModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load gallery posts")
	}

	resp := make([]dto.GalleryResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToGalleryResponse(&rows[i]))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET - GET /gallery/:id
// =========================================================
func (ctrl *GalleryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.GalleryModel
	if err := ctrl.DB.First(&row, "gallery_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Gallery post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load gallery post")
	}
	return helper.JsonOK(c, "", dto.ToGalleryResponse(&row))
}

// =========================================================
// CREATE - POST /gallery (admin, multipart: title, description?, file)
// The image is re-encoded to WebP with a thumbnail before upload.
// =========================================================
func (ctrl *GalleryController) Create(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "title is required")
	}
	var description *string
	if d := strings.TrimSpace(c.FormValue("description")); d != "" {
		description = &d
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}

	fileURL, thumbURL, err := ctrl.Blob.UploadImage(c.Context(), "gallery", fh)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
	}

	m := &model.GalleryModel{
		GalleryTitle:        title,
		GalleryDescription:  description,
		GalleryFileURL:      fileURL,
		GalleryThumbnailURL: thumbURL,
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		// Best-effort cleanup of the just-uploaded objects.
		if delErr := ctrl.Blob.DeleteByPublicURL(c.Context(), fileURL); delErr != nil {
			log.Printf("[GALLERY] orphan cleanup failed: %v", delErr)
		}
		if delErr := ctrl.Blob.DeleteByPublicURL(c.Context(), thumbURL); delErr != nil {
			log.Printf("[GALLERY] orphan cleanup failed: %v", delErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create gallery post")
	}
	return helper.JsonCreated(c, "Gallery post created", dto.ToGalleryResponse(m))
}

// =========================================================
// DELETE - DELETE /gallery/:id (admin)
// Object-store deletion is best-effort: the row goes either way.
// =========================================================
func (ctrl *GalleryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.GalleryModel
	if err := ctrl.DB.First(&row, "gallery_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Gallery post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load gallery post")
	}

	if err := ctrl.DB.Delete(&model.GalleryModel{}, "gallery_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete gallery post")
	}

	if err := ctrl.Blob.DeleteByPublicURL(c.Context(), row.GalleryFileURL); err != nil {
		log.Printf("[GALLERY] object delete failed for %s: %v", row.GalleryFileURL, err)
	}
	if err := ctrl.Blob.DeleteByPublicURL(c.Context(), row.GalleryThumbnailURL); err != nil {
		log.Printf("[GALLERY] object delete failed for %s: %v", row.GalleryThumbnailURL, err)
	}
	return helper.JsonDeleted(c, "Gallery post deleted", fiber.Map{"deleted_id": id})
}
