package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "certassoc_backend/internals/features/education/courses/model"
)

/* =========================
   REQUEST
   ========================= */

type CourseCreateRequest struct {
	CourseName          string  `json:"course_name" validate:"required,min=1,max=200"`
	CourseDescription   *string `json:"course_description" validate:"omitempty,max=5000"`
	CourseCategory      *string `json:"course_category" validate:"omitempty,max=100"`
	CourseInstructor    *string `json:"course_instructor" validate:"omitempty,max=100"`
	CourseFee           int     `json:"course_fee" validate:"gte=0"`
	CourseDurationHours int     `json:"course_duration_hours" validate:"gte=0"`
	CourseTargetGroup   *string `json:"course_target_group" validate:"omitempty,max=300"`
	CourseStatus        string  `json:"course_status" validate:"omitempty,oneof=active inactive draft"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *CourseCreateRequest) Normalize() {
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.CourseDescription = trimPtr(r.CourseDescription)
	r.CourseCategory = trimPtr(r.CourseCategory)
	r.CourseInstructor = trimPtr(r.CourseInstructor)
	r.CourseTargetGroup = trimPtr(r.CourseTargetGroup)
	if r.CourseStatus == "" {
		r.CourseStatus = model.StatusDraft
	}
}

func (r *CourseCreateRequest) ToModel() *model.CourseModel {
	return &model.CourseModel{
		CourseName:          r.CourseName,
		CourseDescription:   r.CourseDescription,
		CourseCategory:      r.CourseCategory,
		CourseInstructor:    r.CourseInstructor,
		CourseFee:           r.CourseFee,
		CourseDurationHours: r.CourseDurationHours,
		CourseTargetGroup:   r.CourseTargetGroup,
		CourseStatus:        r.CourseStatus,
	}
}

type CourseUpdateRequest struct {
	CourseName          *string `json:"course_name" validate:"omitempty,min=1,max=200"`
	CourseDescription   *string `json:"course_description" validate:"omitempty,max=5000"`
	CourseCategory      *string `json:"course_category" validate:"omitempty,max=100"`
	CourseInstructor    *string `json:"course_instructor" validate:"omitempty,max=100"`
	CourseFee           *int    `json:"course_fee" validate:"omitempty,gte=0"`
	CourseDurationHours *int    `json:"course_duration_hours" validate:"omitempty,gte=0"`
	CourseTargetGroup   *string `json:"course_target_group" validate:"omitempty,max=300"`
	CourseStatus        *string `json:"course_status" validate:"omitempty,oneof=active inactive draft"`
}

func (r *CourseUpdateRequest) Normalize() {
	if r.CourseName != nil {
		t := strings.TrimSpace(*r.CourseName)
		r.CourseName = &t
	}
	r.CourseDescription = trimPtr(r.CourseDescription)
	r.CourseCategory = trimPtr(r.CourseCategory)
	r.CourseInstructor = trimPtr(r.CourseInstructor)
	r.CourseTargetGroup = trimPtr(r.CourseTargetGroup)
}

func (r *CourseUpdateRequest) ApplyToModel(m *model.CourseModel) {
	if r.CourseName != nil && *r.CourseName != "" {
		m.CourseName = *r.CourseName
	}
	if r.CourseDescription != nil {
		m.CourseDescription = r.CourseDescription
	}
	if r.CourseCategory != nil {
		m.CourseCategory = r.CourseCategory
	}
	if r.CourseInstructor != nil {
		m.CourseInstructor = r.CourseInstructor
	}
	if r.CourseFee != nil {
		m.CourseFee = *r.CourseFee
	}
	if r.CourseDurationHours != nil {
		m.CourseDurationHours = *r.CourseDurationHours
	}
	if r.CourseTargetGroup != nil {
		m.CourseTargetGroup = r.CourseTargetGroup
	}
	if r.CourseStatus != nil {
		m.CourseStatus = *r.CourseStatus
	}
}

/* =========================
   RESPONSE
   ========================= */

type CourseResponse struct {
	CourseID            uuid.UUID `json:"course_id"`
	CourseName          string    `json:"course_name"`
	CourseDescription   *string   `json:"course_description,omitempty"`
	CourseCategory      *string   `json:"course_category,omitempty"`
	CourseInstructor    *string   `json:"course_instructor,omitempty"`
	CourseFee           int       `json:"course_fee"`
	CourseDurationHours int       `json:"course_duration_hours"`
	CourseTargetGroup   *string   `json:"course_target_group,omitempty"`
	CourseStatus        string    `json:"course_status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:            m.CourseID,
		CourseName:          m.CourseName,
		CourseDescription:   m.CourseDescription,
		CourseCategory:      m.CourseCategory,
		CourseInstructor:    m.CourseInstructor,
		CourseFee:           m.CourseFee,
		CourseDurationHours: m.CourseDurationHours,
		CourseTargetGroup:   m.CourseTargetGroup,
		CourseStatus:        m.CourseStatus,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
