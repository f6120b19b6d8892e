package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "certassoc_backend/internals/features/education/course_schedules/model"
	courseModel "certassoc_backend/internals/features/education/courses/model"
)

/* =========================
   REQUEST
   ========================= */

type CourseScheduleCreateRequest struct {
	CourseID                        uuid.UUID `json:"course_id" validate:"required"`
	CourseScheduleStartDate         time.Time `json:"course_schedule_start_date" validate:"required"`
	CourseScheduleEndDate           time.Time `json:"course_schedule_end_date" validate:"required"`
	CourseScheduleRegistrationStart time.Time `json:"course_schedule_registration_start" validate:"required"`
	CourseScheduleRegistrationEnd   time.Time `json:"course_schedule_registration_end" validate:"required"`
	CourseScheduleLocation          *string   `json:"course_schedule_location" validate:"omitempty,max=300"`
	CourseScheduleMaxParticipants   int       `json:"course_schedule_max_participants" validate:"gte=0"`
	CourseScheduleStatus            string    `json:"course_schedule_status" validate:"omitempty,oneof=scheduled registration_open registration_closed in_progress completed cancelled"`
}

func (r *CourseScheduleCreateRequest) Normalize() {
	if r.CourseScheduleLocation != nil {
		t := strings.TrimSpace(*r.CourseScheduleLocation)
		if t == "" {
			r.CourseScheduleLocation = nil
		} else {
			r.CourseScheduleLocation = &t
		}
	}
	if r.CourseScheduleStatus == "" {
		r.CourseScheduleStatus = model.StatusScheduled
	}
}

func (r *CourseScheduleCreateRequest) ToModel() *model.CourseScheduleModel {
	return &model.CourseScheduleModel{
		CourseID:                        r.CourseID,
		CourseScheduleStartDate:         r.CourseScheduleStartDate,
		CourseScheduleEndDate:           r.CourseScheduleEndDate,
		CourseScheduleRegistrationStart: r.CourseScheduleRegistrationStart,
		CourseScheduleRegistrationEnd:   r.CourseScheduleRegistrationEnd,
		CourseScheduleLocation:          r.CourseScheduleLocation,
		CourseScheduleMaxParticipants:   r.CourseScheduleMaxParticipants,
		CourseScheduleStatus:            r.CourseScheduleStatus,
	}
}

type CourseScheduleUpdateRequest struct {
	CourseScheduleStartDate         *time.Time `json:"course_schedule_start_date"`
	CourseScheduleEndDate           *time.Time `json:"course_schedule_end_date"`
	CourseScheduleRegistrationStart *time.Time `json:"course_schedule_registration_start"`
	CourseScheduleRegistrationEnd   *time.Time `json:"course_schedule_registration_end"`
	CourseScheduleLocation          *string    `json:"course_schedule_location" validate:"omitempty,max=300"`
	CourseScheduleMaxParticipants   *int       `json:"course_schedule_max_participants" validate:"omitempty,gte=0"`
	CourseScheduleStatus            *string    `json:"course_schedule_status" validate:"omitempty,oneof=scheduled registration_open registration_closed in_progress completed cancelled"`
}

func (r *CourseScheduleUpdateRequest) ApplyToModel(m *model.CourseScheduleModel) {
	if r.CourseScheduleStartDate != nil {
		m.CourseScheduleStartDate = *r.CourseScheduleStartDate
	}
	if r.CourseScheduleEndDate != nil {
		m.CourseScheduleEndDate = *r.CourseScheduleEndDate
	}
	if r.CourseScheduleRegistrationStart != nil {
		m.CourseScheduleRegistrationStart = *r.CourseScheduleRegistrationStart
	}
	if r.CourseScheduleRegistrationEnd != nil {
		m.CourseScheduleRegistrationEnd = *r.CourseScheduleRegistrationEnd
	}
	if r.CourseScheduleLocation != nil {
		m.CourseScheduleLocation = r.CourseScheduleLocation
	}
	if r.CourseScheduleMaxParticipants != nil {
		m.CourseScheduleMaxParticipants = *r.CourseScheduleMaxParticipants
	}
	if r.CourseScheduleStatus != nil {
		m.CourseScheduleStatus = *r.CourseScheduleStatus
	}
}

// ValidateDateOrder enforces registration_start < registration_end <=
// start_date <= end_date. Registration may close on the morning the course
// starts, so the boundary between the two windows is inclusive.
func ValidateDateOrder(regStart, regEnd, startDate, endDate time.Time) string {
	if !regStart.Before(regEnd) {
		return "registration_start must be before registration_end"
	}
	if startDate.Before(regEnd) {
		return "registration_end must not be after start_date"
	}
	if endDate.Before(startDate) {
		return "start_date must not be after end_date"
	}
	return ""
}

/* =========================
   RESPONSE
   ========================= */

type CourseScheduleResponse struct {
	CourseScheduleID                uuid.UUID `json:"course_schedule_id"`
	CourseID                        uuid.UUID `json:"course_id"`
	CourseName                      string    `json:"course_name,omitempty"`
	CourseScheduleStartDate         time.Time `json:"course_schedule_start_date"`
	CourseScheduleEndDate           time.Time `json:"course_schedule_end_date"`
	CourseScheduleRegistrationStart time.Time `json:"course_schedule_registration_start"`
	CourseScheduleRegistrationEnd   time.Time `json:"course_schedule_registration_end"`
	CourseScheduleLocation          *string   `json:"course_schedule_location,omitempty"`
	CourseScheduleMaxParticipants   int       `json:"course_schedule_max_participants"`
	CourseScheduleCurParticipants   int       `json:"course_schedule_cur_participants"`
	CourseScheduleStatus            string    `json:"course_schedule_status"`
	CreatedAt                       time.Time `json:"created_at"`
	UpdatedAt                       time.Time `json:"updated_at"`
}

func ToCourseScheduleResponse(m *model.CourseScheduleModel, course *courseModel.CourseModel) CourseScheduleResponse {
	resp := CourseScheduleResponse{
		CourseScheduleID:                m.CourseScheduleID,
		CourseID:                        m.CourseID,
		CourseScheduleStartDate:         m.CourseScheduleStartDate,
		CourseScheduleEndDate:           m.CourseScheduleEndDate,
		CourseScheduleRegistrationStart: m.CourseScheduleRegistrationStart,
		CourseScheduleRegistrationEnd:   m.CourseScheduleRegistrationEnd,
		CourseScheduleLocation:          m.CourseScheduleLocation,
		CourseScheduleMaxParticipants:   m.CourseScheduleMaxParticipants,
		CourseScheduleCurParticipants:   m.CourseScheduleCurParticipants,
		CourseScheduleStatus:            m.CourseScheduleStatus,
		CreatedAt:                       m.CreatedAt,
		UpdatedAt:                       m.UpdatedAt,
	}
	if course != nil {
		resp.CourseName = course.CourseName
	}
	return resp
}
