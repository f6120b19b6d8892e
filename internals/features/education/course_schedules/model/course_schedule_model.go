package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course schedule statuses
const (
	StatusScheduled          = "scheduled"
	StatusRegistrationOpen   = "registration_open"
	StatusRegistrationClosed = "registration_closed"
	StatusInProgress         = "in_progress"
	StatusCompleted          = "completed"
	StatusCancelled          = "cancelled"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusRegistrationOpen, StatusRegistrationClosed,
		StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CourseScheduleModel is one dated offering of a course.
// current_participants is a denormalised counter moved only by the atomic
// reserve/release updates in the enrollment service.
type CourseScheduleModel struct {
	CourseScheduleID                uuid.UUID  `json:"course_schedule_id" gorm:"column:course_schedule_id;type:uuid;primaryKey"`
	CourseID                        uuid.UUID  `json:"course_id" gorm:"column:course_id;type:uuid;not null;index"`
	CourseScheduleStartDate         time.Time  `json:"course_schedule_start_date" gorm:"column:course_schedule_start_date;not null"`
	CourseScheduleEndDate           time.Time  `json:"course_schedule_end_date" gorm:"column:course_schedule_end_date;not null"`
	CourseScheduleRegistrationStart time.Time  `json:"course_schedule_registration_start" gorm:"column:course_schedule_registration_start;not null"`
	CourseScheduleRegistrationEnd   time.Time  `json:"course_schedule_registration_end" gorm:"column:course_schedule_registration_end;not null"`
	CourseScheduleLocation          *string    `json:"course_schedule_location,omitempty" gorm:"column:course_schedule_location"`
	CourseScheduleMaxParticipants   int        `json:"course_schedule_max_participants" gorm:"column:course_schedule_max_participants;not null;default:0"`
	CourseScheduleCurParticipants   int        `json:"course_schedule_cur_participants" gorm:"column:course_schedule_cur_participants;not null;default:0"`
	CourseScheduleStatus            string     `json:"course_schedule_status" gorm:"column:course_schedule_status;not null;default:scheduled"`
	CreatedAt                       time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                       time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (CourseScheduleModel) TableName() string {
	return "course_schedules"
}

func (m *CourseScheduleModel) BeforeCreate(_ *gorm.DB) error {
	if m.CourseScheduleID == uuid.Nil {
		m.CourseScheduleID = uuid.New()
	}
	return nil
}
