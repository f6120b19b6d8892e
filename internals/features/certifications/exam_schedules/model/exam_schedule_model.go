package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exam schedule statuses. Transitions are driven by the admin form; the
// server only validates membership, not ordering.
const (
	StatusScheduled          = "scheduled"
	StatusRegistrationOpen   = "registration_open"
	StatusRegistrationClosed = "registration_closed"
	StatusExamCompleted      = "exam_completed"
	StatusResultsAnnounced   = "results_announced"
	StatusCancelled          = "cancelled"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusRegistrationOpen, StatusRegistrationClosed,
		StatusExamCompleted, StatusResultsAnnounced, StatusCancelled:
		return true
	}
	return false
}

// ExamScheduleModel is one dated sitting of a certification exam.
// current_applicants is a denormalised counter moved only by the atomic
// reserve/release updates in the application service.
type ExamScheduleModel struct {
	ExamScheduleID                uuid.UUID  `json:"exam_schedule_id" gorm:"column:exam_schedule_id;type:uuid;primaryKey"`
	CertificationID               uuid.UUID  `json:"certification_id" gorm:"column:certification_id;type:uuid;not null;index"`
	ExamScheduleExamDate          time.Time  `json:"exam_schedule_exam_date" gorm:"column:exam_schedule_exam_date;not null"`
	ExamScheduleRegistrationStart time.Time  `json:"exam_schedule_registration_start" gorm:"column:exam_schedule_registration_start;not null"`
	ExamScheduleRegistrationEnd   time.Time  `json:"exam_schedule_registration_end" gorm:"column:exam_schedule_registration_end;not null"`
	ExamScheduleResultDate        *time.Time `json:"exam_schedule_result_date,omitempty" gorm:"column:exam_schedule_result_date"`
	ExamScheduleLocation          *string    `json:"exam_schedule_location,omitempty" gorm:"column:exam_schedule_location"`
	ExamScheduleMaxApplicants     int        `json:"exam_schedule_max_applicants" gorm:"column:exam_schedule_max_applicants;not null;default:0"`
	ExamScheduleCurrentApplicants int        `json:"exam_schedule_current_applicants" gorm:"column:exam_schedule_current_applicants;not null;default:0"`
	ExamScheduleStatus            string     `json:"exam_schedule_status" gorm:"column:exam_schedule_status;not null;default:scheduled"`
	CreatedAt                     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                     time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (ExamScheduleModel) TableName() string {
	return "exam_schedules"
}

func (m *ExamScheduleModel) BeforeCreate(_ *gorm.DB) error {
	if m.ExamScheduleID == uuid.Nil {
		m.ExamScheduleID = uuid.New()
	}
	return nil
}
