package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Certification statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDraft    = "draft"
)

// Exam method types (written / practical)
const (
	MethodWritten   = "필기"
	MethodPractical = "실기"
)

// ExamSubject is one entry of the ordered exam_subjects JSONB list.
type ExamSubject struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ExamMethod references exam_subjects by index. Stale indices are tolerated
// in storage and silently dropped at display time.
type ExamMethod struct {
	Type      string `json:"type"` // 필기 | 실기
	Questions int    `json:"questions,omitempty"`
	Time      int    `json:"time,omitempty"` // minutes
	Subjects  []int  `json:"subjects,omitempty"`
}

type CertificationModel struct {
	CertificationID                 uuid.UUID                        `json:"certification_id" gorm:"column:certification_id;type:uuid;primaryKey"`
	CertificationName               string                           `json:"certification_name" gorm:"column:certification_name;not null"`
	CertificationRegistrationNumber string                           `json:"certification_registration_number" gorm:"column:certification_registration_number;uniqueIndex;not null"`
	CertificationApplicationFee     int                              `json:"certification_application_fee" gorm:"column:certification_application_fee;not null;default:0"`
	CertificationCertificateFee     int                              `json:"certification_certificate_fee" gorm:"column:certification_certificate_fee;not null;default:0"`
	CertificationQualificationType  *string                          `json:"certification_qualification_type,omitempty" gorm:"column:certification_qualification_type"`
	CertificationGrade              *string                          `json:"certification_grade,omitempty" gorm:"column:certification_grade"`
	CertificationEligibility        *string                          `json:"certification_eligibility,omitempty" gorm:"column:certification_eligibility"`
	CertificationValidityPeriod     *string                          `json:"certification_validity_period,omitempty" gorm:"column:certification_validity_period"`
	CertificationExamSubjects       datatypes.JSONSlice[ExamSubject] `json:"certification_exam_subjects" gorm:"column:certification_exam_subjects"`
	CertificationExamMethods        datatypes.JSONSlice[ExamMethod]  `json:"certification_exam_methods" gorm:"column:certification_exam_methods"`
	CertificationPassingCriteria    *string                          `json:"certification_passing_criteria,omitempty" gorm:"column:certification_passing_criteria;type:text"`
	CertificationStatus             string                           `json:"certification_status" gorm:"column:certification_status;not null;default:draft"`
	CreatedAt                       time.Time                        `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                       time.Time                        `json:"updated_at" gorm:"column:updated_at"`
}

func (CertificationModel) TableName() string {
	return "certifications"
}

func (m *CertificationModel) BeforeCreate(_ *gorm.DB) error {
	if m.CertificationID == uuid.Nil {
		m.CertificationID = uuid.New()
	}
	return nil
}
