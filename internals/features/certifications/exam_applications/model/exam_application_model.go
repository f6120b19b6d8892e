package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses, in rough lifecycle order.
const (
	AppStatusDraft            = "draft"
	AppStatusSubmitted        = "submitted"
	AppStatusPaymentPending   = "payment_pending"
	AppStatusPaymentCompleted = "payment_completed"
	AppStatusConfirmed        = "confirmed"
	AppStatusExamTaken        = "exam_taken"
	AppStatusPassed           = "passed"
	AppStatusFailed           = "failed"
	AppStatusCancelled        = "cancelled"
)

// Payment statuses
const (
	PayStatusPending   = "pending"
	PayStatusCompleted = "completed"
	PayStatusFailed    = "failed"
	PayStatusCancelled = "cancelled"
)

func IsValidAppStatus(s string) bool {
	switch s {
	case AppStatusDraft, AppStatusSubmitted, AppStatusPaymentPending,
		AppStatusPaymentCompleted, AppStatusConfirmed, AppStatusExamTaken,
		AppStatusPassed, AppStatusFailed, AppStatusCancelled:
		return true
	}
	return false
}

// ExamApplicationModel is one member's application for one exam sitting.
// Applicant fields are snapshotted at submission time so later profile edits
// do not rewrite past applications. certification_id is denormalised from the
// schedule for cheap per-certification admin filters.
type ExamApplicationModel struct {
	ExamApplicationID           uuid.UUID  `json:"exam_application_id" gorm:"column:exam_application_id;type:uuid;primaryKey"`
	ExamScheduleID              uuid.UUID  `json:"exam_schedule_id" gorm:"column:exam_schedule_id;type:uuid;not null;index;uniqueIndex:uq_exam_applications_schedule_user"`
	CertificationID             uuid.UUID  `json:"certification_id" gorm:"column:certification_id;type:uuid;not null;index"`
	UserID                      uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:uq_exam_applications_schedule_user"`
	ExamApplicationName         string     `json:"exam_application_name" gorm:"column:exam_application_name;not null"`
	ExamApplicationPhone        string     `json:"exam_application_phone" gorm:"column:exam_application_phone;not null"`
	ExamApplicationEmail        *string    `json:"exam_application_email,omitempty" gorm:"column:exam_application_email"`
	ExamApplicationBirthDate    *time.Time `json:"exam_application_birth_date,omitempty" gorm:"column:exam_application_birth_date;type:date"`
	ExamApplicationAddress      *string    `json:"exam_application_address,omitempty" gorm:"column:exam_application_address"`
	ExamApplicationStatus       string     `json:"exam_application_status" gorm:"column:exam_application_status;not null;default:submitted"`
	ExamApplicationPayStatus    string     `json:"exam_application_pay_status" gorm:"column:exam_application_pay_status;not null;default:pending"`
	ExamApplicationPayMethod    *string    `json:"exam_application_pay_method,omitempty" gorm:"column:exam_application_pay_method"`
	ExamApplicationPassStatus   *bool      `json:"exam_application_pass_status,omitempty" gorm:"column:exam_application_pass_status"`
	ExamApplicationSubmittedAt  time.Time  `json:"exam_application_submitted_at" gorm:"column:exam_application_submitted_at;not null"`
	ExamApplicationCancelledAt  *time.Time `json:"exam_application_cancelled_at,omitempty" gorm:"column:exam_application_cancelled_at"`
	CreatedAt                   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                   time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (ExamApplicationModel) TableName() string {
	return "exam_applications"
}

func (m *ExamApplicationModel) BeforeCreate(_ *gorm.DB) error {
	if m.ExamApplicationID == uuid.Nil {
		m.ExamApplicationID = uuid.New()
	}
	return nil
}
