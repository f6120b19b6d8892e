package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"certassoc_backend/internals/features/education/enrollments/model"
)

// =========================================================
// Request DTO
// =========================================================

type EnrollmentCreateRequest struct {
	CourseScheduleID string  `json:"course_schedule_id" validate:"required,uuid"`
	Name             string  `json:"name" validate:"required,min=2,max=100"`
	Phone            string  `json:"phone" validate:"required,min=9,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Organization     *string `json:"organization" validate:"omitempty,max=200"`
}

func (r *EnrollmentCreateRequest) Normalize() {
	r.CourseScheduleID = strings.TrimSpace(r.CourseScheduleID)
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
	if r.Organization != nil {
		o := strings.TrimSpace(*r.Organization)
		r.Organization = &o
	}
}

type EnrollmentCompletionRequest struct {
	CompletionStatus string `json:"completion_status" validate:"required,oneof=in_progress completed incomplete"`
}

// =========================================================
// Response DTO
// =========================================================

type EnrollmentResponse struct {
	EnrollmentID     uuid.UUID  `json:"enrollment_id"`
	CourseScheduleID uuid.UUID  `json:"course_schedule_id"`
	CourseID         uuid.UUID  `json:"course_id"`
	UserID           uuid.UUID  `json:"user_id"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	Email            *string    `json:"email,omitempty"`
	Organization     *string    `json:"organization,omitempty"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	CompletionStatus string     `json:"completion_status"`
	AppliedAt        time.Time  `json:"applied_at"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`

	// Joined display fields, filled by list endpoints.
	CourseName string     `json:"course_name,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
}

func ToEnrollmentResponse(m *model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:     m.EnrollmentID,
		CourseScheduleID: m.CourseScheduleID,
		CourseID:         m.CourseID,
		UserID:           m.UserID,
		Name:             m.EnrollmentName,
		Phone:            m.EnrollmentPhone,
		Email:            m.EnrollmentEmail,
		Organization:     m.EnrollmentOrganization,
		Status:           m.EnrollmentStatus,
		PaymentStatus:    m.EnrollmentPayStatus,
		CompletionStatus: m.EnrollmentCompletionStatus,
		AppliedAt:        m.EnrollmentAppliedAt,
		CancelledAt:      m.EnrollmentCancelledAt,
	}
}
