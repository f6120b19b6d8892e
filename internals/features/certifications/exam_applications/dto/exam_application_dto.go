package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"certassoc_backend/internals/features/certifications/exam_applications/model"
)

// =========================================================
// Request DTO
// =========================================================

type ExamApplicationSubmitRequest struct {
	ExamScheduleID string  `json:"exam_schedule_id" validate:"required,uuid"`
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Phone          string  `json:"phone" validate:"required,min=9,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
	BirthDate      *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Address        *string `json:"address" validate:"omitempty,max=300"`
	PaymentMethod  *string `json:"payment_method" validate:"omitempty,oneof=bank_transfer card on_site"`
}

func (r *ExamApplicationSubmitRequest) Normalize() {
	r.ExamScheduleID = strings.TrimSpace(r.ExamScheduleID)
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
	if r.Address != nil {
		a := strings.TrimSpace(*r.Address)
		r.Address = &a
	}
}

// BirthDateTime parses the validated yyyy-mm-dd birth date, if present.
func (r *ExamApplicationSubmitRequest) BirthDateTime() *time.Time {
	if r.BirthDate == nil || *r.BirthDate == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *r.BirthDate)
	if err != nil {
		return nil
	}
	return &t
}

type ExamApplicationPassRequest struct {
	Passed bool `json:"passed"`
}

type ExamApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// =========================================================
// Response DTO
// =========================================================

type ExamApplicationResponse struct {
	ExamApplicationID uuid.UUID  `json:"exam_application_id"`
	ExamScheduleID    uuid.UUID  `json:"exam_schedule_id"`
	CertificationID   uuid.UUID  `json:"certification_id"`
	UserID            uuid.UUID  `json:"user_id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Email             *string    `json:"email,omitempty"`
	BirthDate         *string    `json:"birth_date,omitempty"`
	Address           *string    `json:"address,omitempty"`
	Status            string     `json:"status"`
	PaymentStatus     string     `json:"payment_status"`
	PaymentMethod     *string    `json:"payment_method,omitempty"`
	PassStatus        *bool      `json:"pass_status,omitempty"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`

	// Joined display fields, filled by list endpoints.
	CertificationName string     `json:"certification_name,omitempty"`
	ExamDate          *time.Time `json:"exam_date,omitempty"`
}

func ToExamApplicationResponse(m *model.ExamApplicationModel) ExamApplicationResponse {
	resp := ExamApplicationResponse{
		ExamApplicationID: m.ExamApplicationID,
		ExamScheduleID:    m.ExamScheduleID,
		CertificationID:   m.CertificationID,
		UserID:            m.UserID,
		Name:              m.ExamApplicationName,
		Phone:             m.ExamApplicationPhone,
		Email:             m.ExamApplicationEmail,
		Address:           m.ExamApplicationAddress,
		Status:            m.ExamApplicationStatus,
		PaymentStatus:     m.ExamApplicationPayStatus,
		PaymentMethod:     m.ExamApplicationPayMethod,
		PassStatus:        m.ExamApplicationPassStatus,
		SubmittedAt:       m.ExamApplicationSubmittedAt,
		CancelledAt:       m.ExamApplicationCancelledAt,
	}
	if m.ExamApplicationBirthDate != nil {
		b := m.ExamApplicationBirthDate.Format("2006-01-02")
		resp.BirthDate = &b
	}
	return resp
}
