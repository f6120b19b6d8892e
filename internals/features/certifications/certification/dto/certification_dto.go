package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"certassoc_backend/internals/features/certifications/certification/criteria"
	model "certassoc_backend/internals/features/certifications/certification/model"
)

/* =========================
   REQUEST
   ========================= */

type CertificationCreateRequest struct {
	CertificationName               string              `json:"certification_name" validate:"required,min=1,max=200"`
	CertificationRegistrationNumber string              `json:"certification_registration_number" validate:"required,min=1,max=100"`
	CertificationApplicationFee     int                 `json:"certification_application_fee" validate:"gte=0"`
	CertificationCertificateFee     int                 `json:"certification_certificate_fee" validate:"gte=0"`
	CertificationQualificationType  *string             `json:"certification_qualification_type" validate:"omitempty,max=100"`
	CertificationGrade              *string             `json:"certification_grade" validate:"omitempty,max=100"`
	CertificationEligibility        *string             `json:"certification_eligibility" validate:"omitempty,max=1000"`
	CertificationValidityPeriod     *string             `json:"certification_validity_period" validate:"omitempty,max=100"`
	CertificationExamSubjects       []model.ExamSubject `json:"certification_exam_subjects" validate:"omitempty,dive"`
	CertificationExamMethods        []model.ExamMethod  `json:"certification_exam_methods" validate:"omitempty,dive"`
	// Stored exactly as submitted: either the structured JSON document or
	// the legacy delimited text. No normalisation happens on write.
	CertificationPassingCriteria *string `json:"certification_passing_criteria"`
	CertificationStatus          string  `json:"certification_status" validate:"omitempty,oneof=active inactive draft"`
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

func (r *CertificationCreateRequest) Normalize() {
	r.CertificationName = strings.TrimSpace(r.CertificationName)
	r.CertificationRegistrationNumber = strings.TrimSpace(r.CertificationRegistrationNumber)
	r.CertificationQualificationType = trimPtr(r.CertificationQualificationType)
	r.CertificationGrade = trimPtr(r.CertificationGrade)
	r.CertificationEligibility = trimPtr(r.CertificationEligibility)
	r.CertificationValidityPeriod = trimPtr(r.CertificationValidityPeriod)
	if r.CertificationStatus == "" {
		r.CertificationStatus = model.StatusDraft
	}
}

// ValidateMethods rejects an unknown exam method type up front. Subject
// indices are deliberately NOT validated here: stale indices are legal in
// storage and dropped at display time.
func (r *CertificationCreateRequest) ValidateMethods() string {
	for _, m := range r.CertificationExamMethods {
		if m.Type != model.MethodWritten && m.Type != model.MethodPractical {
			return "exam method type must be 필기 or 실기"
		}
	}
	return ""
}

func (r *CertificationCreateRequest) ToModel() *model.CertificationModel {
	return &model.CertificationModel{
		CertificationName:               r.CertificationName,
		CertificationRegistrationNumber: r.CertificationRegistrationNumber,
		CertificationApplicationFee:     r.CertificationApplicationFee,
		CertificationCertificateFee:     r.CertificationCertificateFee,
		CertificationQualificationType:  r.CertificationQualificationType,
		CertificationGrade:              r.CertificationGrade,
		CertificationEligibility:        r.CertificationEligibility,
		CertificationValidityPeriod:     r.CertificationValidityPeriod,
		CertificationExamSubjects:       datatypes.NewJSONSlice(r.CertificationExamSubjects),
		CertificationExamMethods:        datatypes.NewJSONSlice(r.CertificationExamMethods),
		CertificationPassingCriteria:    r.CertificationPassingCriteria,
		CertificationStatus:             r.CertificationStatus,
	}
}

type CertificationUpdateRequest struct {
	CertificationName               *string              `json:"certification_name" validate:"omitempty,min=1,max=200"`
	CertificationRegistrationNumber *string              `json:"certification_registration_number" validate:"omitempty,min=1,max=100"`
	CertificationApplicationFee     *int                 `json:"certification_application_fee" validate:"omitempty,gte=0"`
	CertificationCertificateFee     *int                 `json:"certification_certificate_fee" validate:"omitempty,gte=0"`
	CertificationQualificationType  *string              `json:"certification_qualification_type" validate:"omitempty,max=100"`
	CertificationGrade              *string              `json:"certification_grade" validate:"omitempty,max=100"`
	CertificationEligibility        *string              `json:"certification_eligibility" validate:"omitempty,max=1000"`
	CertificationValidityPeriod     *string              `json:"certification_validity_period" validate:"omitempty,max=100"`
	CertificationExamSubjects       *[]model.ExamSubject `json:"certification_exam_subjects"`
	CertificationExamMethods        *[]model.ExamMethod  `json:"certification_exam_methods"`
	CertificationPassingCriteria    *string              `json:"certification_passing_criteria"`
	CertificationStatus             *string              `json:"certification_status" validate:"omitempty,oneof=active inactive draft"`
}

func (r *CertificationUpdateRequest) Normalize() {
	if r.CertificationName != nil {
		t := strings.TrimSpace(*r.CertificationName)
		r.CertificationName = &t
	}
	if r.CertificationRegistrationNumber != nil {
		t := strings.TrimSpace(*r.CertificationRegistrationNumber)
		r.CertificationRegistrationNumber = &t
	}
	r.CertificationQualificationType = trimPtr(r.CertificationQualificationType)
	r.CertificationGrade = trimPtr(r.CertificationGrade)
	r.CertificationEligibility = trimPtr(r.CertificationEligibility)
	r.CertificationValidityPeriod = trimPtr(r.CertificationValidityPeriod)
}

func (r *CertificationUpdateRequest) ValidateMethods() string {
	if r.CertificationExamMethods == nil {
		return ""
	}
	for _, m := range *r.CertificationExamMethods {
		if m.Type != model.MethodWritten && m.Type != model.MethodPractical {
			return "exam method type must be 필기 or 실기"
		}
	}
	return ""
}

func (r *CertificationUpdateRequest) ApplyToModel(m *model.CertificationModel) {
	if r.CertificationName != nil && *r.CertificationName != "" {
		m.CertificationName = *r.CertificationName
	}
	if r.CertificationRegistrationNumber != nil && *r.CertificationRegistrationNumber != "" {
		m.CertificationRegistrationNumber = *r.CertificationRegistrationNumber
	}
	if r.CertificationApplicationFee != nil {
		m.CertificationApplicationFee = *r.CertificationApplicationFee
	}
	if r.CertificationCertificateFee != nil {
		m.CertificationCertificateFee = *r.CertificationCertificateFee
	}
	if r.CertificationQualificationType != nil {
		m.CertificationQualificationType = r.CertificationQualificationType
	}
	if r.CertificationGrade != nil {
		m.CertificationGrade = r.CertificationGrade
	}
	if r.CertificationEligibility != nil {
		m.CertificationEligibility = r.CertificationEligibility
	}
	if r.CertificationValidityPeriod != nil {
		m.CertificationValidityPeriod = r.CertificationValidityPeriod
	}
	if r.CertificationExamSubjects != nil {
		m.CertificationExamSubjects = datatypes.NewJSONSlice(*r.CertificationExamSubjects)
	}
	if r.CertificationExamMethods != nil {
		m.CertificationExamMethods = datatypes.NewJSONSlice(*r.CertificationExamMethods)
	}
	if r.CertificationPassingCriteria != nil {
		m.CertificationPassingCriteria = r.CertificationPassingCriteria
	}
	if r.CertificationStatus != nil {
		m.CertificationStatus = *r.CertificationStatus
	}
}

/* =========================
   RESPONSE
   ========================= */

// ExamMethodResponse carries the stored indices plus the resolved subject
// names; out-of-range indices are dropped, never an error.
type ExamMethodResponse struct {
	Type         string   `json:"type"`
	Questions    int      `json:"questions,omitempty"`
	Time         int      `json:"time,omitempty"`
	Subjects     []int    `json:"subjects"`
	SubjectNames []string `json:"subject_names"`
}

// ResolveMethodSubjects maps each method's subject indices onto the ordered
// subject list, silently dropping anything out of range.
func ResolveMethodSubjects(subjects []model.ExamSubject, methods []model.ExamMethod) []ExamMethodResponse {
	out := make([]ExamMethodResponse, 0, len(methods))
	for _, m := range methods {
		resp := ExamMethodResponse{
			Type:         m.Type,
			Questions:    m.Questions,
			Time:         m.Time,
			Subjects:     make([]int, 0, len(m.Subjects)),
			SubjectNames: make([]string, 0, len(m.Subjects)),
		}
		for _, idx := range m.Subjects {
			if idx < 0 || idx >= len(subjects) {
				continue
			}
			resp.Subjects = append(resp.Subjects, idx)
			resp.SubjectNames = append(resp.SubjectNames, subjects[idx].Name)
		}
		out = append(out, resp)
	}
	return out
}

type CertificationResponse struct {
	CertificationID                 uuid.UUID            `json:"certification_id"`
	CertificationName               string               `json:"certification_name"`
	CertificationRegistrationNumber string               `json:"certification_registration_number"`
	CertificationApplicationFee     int                  `json:"certification_application_fee"`
	CertificationCertificateFee     int                  `json:"certification_certificate_fee"`
	CertificationQualificationType  *string              `json:"certification_qualification_type,omitempty"`
	CertificationGrade              *string              `json:"certification_grade,omitempty"`
	CertificationEligibility        *string              `json:"certification_eligibility,omitempty"`
	CertificationValidityPeriod     *string              `json:"certification_validity_period,omitempty"`
	CertificationExamSubjects       []model.ExamSubject  `json:"certification_exam_subjects"`
	CertificationExamMethods        []ExamMethodResponse `json:"certification_exam_methods"`
	CertificationPassingCriteria    *string              `json:"certification_passing_criteria,omitempty"`
	PassingCriteriaItems            []criteria.Item      `json:"passing_criteria_items,omitempty"`
	CertificationStatus             string               `json:"certification_status"`
	CreatedAt                       time.Time            `json:"created_at"`
	UpdatedAt                       time.Time            `json:"updated_at"`
}

func ToCertificationResponse(m *model.CertificationModel) CertificationResponse {
	resp := CertificationResponse{
		CertificationID:                 m.CertificationID,
		CertificationName:               m.CertificationName,
		CertificationRegistrationNumber: m.CertificationRegistrationNumber,
		CertificationApplicationFee:     m.CertificationApplicationFee,
		CertificationCertificateFee:     m.CertificationCertificateFee,
		CertificationQualificationType:  m.CertificationQualificationType,
		CertificationGrade:              m.CertificationGrade,
		CertificationEligibility:        m.CertificationEligibility,
		CertificationValidityPeriod:     m.CertificationValidityPeriod,
		CertificationExamSubjects:       m.CertificationExamSubjects,
		CertificationExamMethods:        ResolveMethodSubjects(m.CertificationExamSubjects, m.CertificationExamMethods),
		CertificationPassingCriteria:    m.CertificationPassingCriteria,
		CertificationStatus:             m.CertificationStatus,
		CreatedAt:                       m.CreatedAt,
		UpdatedAt:                       m.UpdatedAt,
	}
	if m.CertificationPassingCriteria != nil {
		resp.PassingCriteriaItems = criteria.Decode(*m.CertificationPassingCriteria).Items
	}
	return resp
}
