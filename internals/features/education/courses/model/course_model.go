package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDraft    = "draft"
)

// CourseModel is one education course in the catalog. Dated offerings live in
// course_schedules; this row carries the catalog-level description and fees.
type CourseModel struct {
	CourseID            uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;primaryKey"`
	CourseName          string    `json:"course_name" gorm:"column:course_name;not null"`
	CourseDescription   *string   `json:"course_description,omitempty" gorm:"column:course_description;type:text"`
	CourseCategory      *string   `json:"course_category,omitempty" gorm:"column:course_category"`
	CourseInstructor    *string   `json:"course_instructor,omitempty" gorm:"column:course_instructor"`
	CourseFee           int       `json:"course_fee" gorm:"column:course_fee;not null;default:0"`
	CourseDurationHours int       `json:"course_duration_hours" gorm:"column:course_duration_hours;not null;default:0"`
	CourseTargetGroup   *string   `json:"course_target_group,omitempty" gorm:"column:course_target_group"`
	CourseStatus        string    `json:"course_status" gorm:"column:course_status;not null;default:draft"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(_ *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}
