package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "certassoc_backend/internals/features/education/course_schedules/model"
	dto "certassoc_backend/internals/features/education/courses/dto"
	model "certassoc_backend/internals/features/education/courses/model"
	helper "certassoc_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// LIST - GET /courses?status=&category=&search=
// =========================================================
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("course_status = ?", status)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("course_category = ?", category)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("course_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load courses")
	}

	resp := make([]dto.CourseResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToCourseResponse(&rows[i]))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET BY ID - GET /courses/:id
// =========================================================
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.CourseModel
	if err := ctrl.DB.First(&row, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	return helper.JsonOK(c, "", dto.ToCourseResponse(&row))
}

// =========================================================
// CREATE - POST /courses (admin)
// =========================================================
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", dto.ToCourseResponse(m))
}

// =========================================================
// UPDATE - PUT /courses/:id (admin)
// =========================================================
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.CourseModel
	if err := ctrl.DB.First(&row, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	req.ApplyToModel(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated", dto.ToCourseResponse(&row))
}

// =========================================================
// DELETE - DELETE /courses/:id (admin)
// RESTRICT: refused while schedules still reference the course.
// =========================================================
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var schedCount int64
	if err := ctrl.DB.Model(&scheduleModel.CourseScheduleModel{}).
		Where("course_id = ?", id).Count(&schedCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check schedules")
	}
	if schedCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Course still has schedules; delete them first")
	}

	res := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"deleted_id": id})
}
