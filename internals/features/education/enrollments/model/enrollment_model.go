package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollStatusApplied   = "applied"
	EnrollStatusConfirmed = "confirmed"
	EnrollStatusCancelled = "cancelled"
	EnrollStatusCompleted = "completed"
)

// Payment statuses
const (
	PayStatusPending   = "pending"
	PayStatusCompleted = "completed"
	PayStatusFailed    = "failed"
	PayStatusCancelled = "cancelled"
)

// Completion statuses, tracked separately from the enrollment lifecycle so a
// confirmed participant who dropped out can still be marked incomplete.
const (
	CompletionInProgress = "in_progress"
	CompletionCompleted  = "completed"
	CompletionIncomplete = "incomplete"
)

func IsValidEnrollStatus(s string) bool {
	switch s {
	case EnrollStatusApplied, EnrollStatusConfirmed, EnrollStatusCancelled, EnrollStatusCompleted:
		return true
	}
	return false
}

func IsValidCompletionStatus(s string) bool {
	switch s {
	case CompletionInProgress, CompletionCompleted, CompletionIncomplete:
		return true
	}
	return false
}

// EnrollmentModel is one member's enrollment in one course offering.
// Participant fields are snapshotted at application time; course_id is
// denormalised from the schedule for per-course admin filters.
type EnrollmentModel struct {
	EnrollmentID               uuid.UUID  `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;primaryKey"`
	CourseScheduleID           uuid.UUID  `json:"course_schedule_id" gorm:"column:course_schedule_id;type:uuid;not null;index;uniqueIndex:uq_enrollments_schedule_user"`
	CourseID                   uuid.UUID  `json:"course_id" gorm:"column:course_id;type:uuid;not null;index"`
	UserID                     uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:uq_enrollments_schedule_user"`
	EnrollmentName             string     `json:"enrollment_name" gorm:"column:enrollment_name;not null"`
	EnrollmentPhone            string     `json:"enrollment_phone" gorm:"column:enrollment_phone;not null"`
	EnrollmentEmail            *string    `json:"enrollment_email,omitempty" gorm:"column:enrollment_email"`
	EnrollmentOrganization     *string    `json:"enrollment_organization,omitempty" gorm:"column:enrollment_organization"`
	EnrollmentStatus           string     `json:"enrollment_status" gorm:"column:enrollment_status;not null;default:applied"`
	EnrollmentPayStatus        string     `json:"enrollment_pay_status" gorm:"column:enrollment_pay_status;not null;default:pending"`
	EnrollmentCompletionStatus string     `json:"enrollment_completion_status" gorm:"column:enrollment_completion_status;not null;default:in_progress"`
	EnrollmentAppliedAt        time.Time  `json:"enrollment_applied_at" gorm:"column:enrollment_applied_at;not null"`
	EnrollmentCancelledAt      *time.Time `json:"enrollment_cancelled_at,omitempty" gorm:"column:enrollment_cancelled_at"`
	CreatedAt                  time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                  time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (m *EnrollmentModel) BeforeCreate(_ *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
