package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "certassoc_backend/internals/features/education/course_schedules/dto"
	model "certassoc_backend/internals/features/education/course_schedules/model"
	courseModel "certassoc_backend/internals/features/education/courses/model"
	enrollModel "certassoc_backend/internals/features/education/enrollments/model"
	helper "certassoc_backend/internals/helpers"
)

type CourseScheduleController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// LIST - GET /course-schedules?course_id=&status=
// =========================================================
func (ctrl *CourseScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseScheduleModel{})
	if courseID := strings.TrimSpace(c.Query("course_id")); courseID != "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_id")
		}
		q = q.Where("course_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("course_schedule_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var rows []model.CourseScheduleModel
	if err := q.Order("course_schedule_start_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedules")
	}

	// one lookup for the course names on this page
	nameByID := map[uuid.UUID]*courseModel.CourseModel{}
	if len(rows) > 0 {
		ids := make([]uuid.UUID, 0, len(rows))
		for i := range rows {
			ids = append(ids, rows[i].CourseID)
		}
		var courses []courseModel.CourseModel
		if err := ctrl.DB.Where("course_id IN ?", ids).Find(&courses).Error; err == nil {
			for i := range courses {
				nameByID[courses[i].CourseID] = &courses[i]
			}
		}
	}

	resp := make([]dto.CourseScheduleResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToCourseScheduleResponse(&rows[i], nameByID[rows[i].CourseID]))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET BY ID - GET /course-schedules/:id
// =========================================================
func (ctrl *CourseScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.CourseScheduleModel
	if err := ctrl.DB.First(&row, "course_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	var course courseModel.CourseModel
	coursePtr := &course
	if err := ctrl.DB.First(&course, "course_id = ?", row.CourseID).Error; err != nil {
		coursePtr = nil
	}
	return helper.JsonOK(c, "", dto.ToCourseScheduleResponse(&row, coursePtr))
}

// =========================================================
// CREATE - POST /course-schedules (admin)
// =========================================================
func (ctrl *CourseScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CourseScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if msg := dto.ValidateDateOrder(
		req.CourseScheduleRegistrationStart,
		req.CourseScheduleRegistrationEnd,
		req.CourseScheduleStartDate,
		req.CourseScheduleEndDate,
	); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.JsonCreated(c, "Course schedule created", dto.ToCourseScheduleResponse(m, &course))
}

// =========================================================
// UPDATE - PUT /course-schedules/:id (admin)
// =========================================================
func (ctrl *CourseScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CourseScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.CourseScheduleModel
	if err := ctrl.DB.First(&row, "course_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedule")
	}

	req.ApplyToModel(&row)
	if msg := dto.ValidateDateOrder(
		row.CourseScheduleRegistrationStart,
		row.CourseScheduleRegistrationEnd,
		row.CourseScheduleStartDate,
		row.CourseScheduleEndDate,
	); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}
	if row.CourseScheduleMaxParticipants < row.CourseScheduleCurParticipants {
		return helper.JsonError(c, fiber.StatusBadRequest, "max_participants cannot drop below the current participant count")
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}
	return helper.JsonUpdated(c, "Course schedule updated", dto.ToCourseScheduleResponse(&row, nil))
}

// =========================================================
// PATCH /course-schedules/:id/status (admin)
// =========================================================
func (ctrl *CourseScheduleController) UpdateStatus(c *fiber.Ctx) error {
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

	res := ctrl.DB.Model(&model.CourseScheduleModel{}).
		Where("course_schedule_id = ?", id).
		Update("course_schedule_status", body.Status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course schedule not found")
	}
	return helper.JsonUpdated(c, "Schedule status updated", fiber.Map{"course_schedule_status": body.Status})
}

// =========================================================
// DELETE - DELETE /course-schedules/:id (admin)
// RESTRICT: refused while enrollments still reference the schedule.
// =========================================================
func (ctrl *CourseScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var enrollCount int64
	if err := ctrl.DB.Model(&enrollModel.EnrollmentModel{}).
		Where("course_schedule_id = ?", id).Count(&enrollCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check enrollments")
	}
	if enrollCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Schedule still has enrollments; cancel them first")
	}

	res := ctrl.DB.Delete(&model.CourseScheduleModel{}, "course_schedule_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course schedule not found")
	}
	return helper.JsonDeleted(c, "Course schedule deleted", fiber.Map{"deleted_id": id})
}
