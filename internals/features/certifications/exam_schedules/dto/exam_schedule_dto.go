package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	certModel "certassoc_backend/internals/features/certifications/certification/model"
	model "certassoc_backend/internals/features/certifications/exam_schedules/model"
)

/* =========================
   REQUEST
   ========================= */

type ExamScheduleCreateRequest struct {
	CertificationID               uuid.UUID  `json:"certification_id" validate:"required"`
	ExamScheduleExamDate          time.Time  `json:"exam_schedule_exam_date" validate:"required"`
	ExamScheduleRegistrationStart time.Time  `json:"exam_schedule_registration_start" validate:"required"`
	ExamScheduleRegistrationEnd   time.Time  `json:"exam_schedule_registration_end" validate:"required"`
	ExamScheduleResultDate        *time.Time `json:"exam_schedule_result_date"`
	ExamScheduleLocation          *string    `json:"exam_schedule_location" validate:"omitempty,max=300"`
	ExamScheduleMaxApplicants     int        `json:"exam_schedule_max_applicants" validate:"gte=0"`
	ExamScheduleStatus            string     `json:"exam_schedule_status" validate:"omitempty,oneof=scheduled registration_open registration_closed exam_completed results_announced cancelled"`
}

func (r *ExamScheduleCreateRequest) Normalize() {
	if r.ExamScheduleLocation != nil {
		t := strings.TrimSpace(*r.ExamScheduleLocation)
		if t == "" {
			r.ExamScheduleLocation = nil
		} else {
			r.ExamScheduleLocation = &t
		}
	}
	if r.ExamScheduleStatus == "" {
		r.ExamScheduleStatus = model.StatusScheduled
	}
}

func (r *ExamScheduleCreateRequest) ToModel() *model.ExamScheduleModel {
	return &model.ExamScheduleModel{
		CertificationID:               r.CertificationID,
		ExamScheduleExamDate:          r.ExamScheduleExamDate,
		ExamScheduleRegistrationStart: r.ExamScheduleRegistrationStart,
		ExamScheduleRegistrationEnd:   r.ExamScheduleRegistrationEnd,
		ExamScheduleResultDate:        r.ExamScheduleResultDate,
		ExamScheduleLocation:          r.ExamScheduleLocation,
		ExamScheduleMaxApplicants:     r.ExamScheduleMaxApplicants,
		ExamScheduleStatus:            r.ExamScheduleStatus,
	}
}

type ExamScheduleUpdateRequest struct {
	ExamScheduleExamDate          *time.Time `json:"exam_schedule_exam_date"`
	ExamScheduleRegistrationStart *time.Time `json:"exam_schedule_registration_start"`
	ExamScheduleRegistrationEnd   *time.Time `json:"exam_schedule_registration_end"`
	ExamScheduleResultDate        *time.Time `json:"exam_schedule_result_date"`
	ExamScheduleLocation          *string    `json:"exam_schedule_location" validate:"omitempty,max=300"`
	ExamScheduleMaxApplicants     *int       `json:"exam_schedule_max_applicants" validate:"omitempty,gte=0"`
	ExamScheduleStatus            *string    `json:"exam_schedule_status" validate:"omitempty,oneof=scheduled registration_open registration_closed exam_completed results_announced cancelled"`
}

func (r *ExamScheduleUpdateRequest) ApplyToModel(m *model.ExamScheduleModel) {
	if r.ExamScheduleExamDate != nil {
		m.ExamScheduleExamDate = *r.ExamScheduleExamDate
	}
	if r.ExamScheduleRegistrationStart != nil {
		m.ExamScheduleRegistrationStart = *r.ExamScheduleRegistrationStart
	}
	if r.ExamScheduleRegistrationEnd != nil {
		m.ExamScheduleRegistrationEnd = *r.ExamScheduleRegistrationEnd
	}
	if r.ExamScheduleResultDate != nil {
		m.ExamScheduleResultDate = r.ExamScheduleResultDate
	}
	if r.ExamScheduleLocation != nil {
		m.ExamScheduleLocation = r.ExamScheduleLocation
	}
	if r.ExamScheduleMaxApplicants != nil {
		m.ExamScheduleMaxApplicants = *r.ExamScheduleMaxApplicants
	}
	if r.ExamScheduleStatus != nil {
		m.ExamScheduleStatus = *r.ExamScheduleStatus
	}
}

// ValidateDateOrder enforces registration_start < registration_end <
// exam_date < result_date (when present). The legacy frontend only checked
// this client-side; the server re-checks on every write.
func ValidateDateOrder(regStart, regEnd, examDate time.Time, resultDate *time.Time) string {
	if !regStart.Before(regEnd) {
		return "registration_start must be before registration_end"
	}
	if !regEnd.Before(examDate) {
		return "registration_end must be before exam_date"
	}
	if resultDate != nil && !examDate.Before(*resultDate) {
		return "exam_date must be before result_date"
	}
	return ""
}

/* =========================
   RESPONSE
   ========================= */

type ExamScheduleResponse struct {
	ExamScheduleID                uuid.UUID  `json:"exam_schedule_id"`
	CertificationID               uuid.UUID  `json:"certification_id"`
	CertificationName             string     `json:"certification_name,omitempty"`
	ExamScheduleExamDate          time.Time  `json:"exam_schedule_exam_date"`
	ExamScheduleRegistrationStart time.Time  `json:"exam_schedule_registration_start"`
	ExamScheduleRegistrationEnd   time.Time  `json:"exam_schedule_registration_end"`
	ExamScheduleResultDate        *time.Time `json:"exam_schedule_result_date,omitempty"`
	ExamScheduleLocation          *string    `json:"exam_schedule_location,omitempty"`
	ExamScheduleMaxApplicants     int        `json:"exam_schedule_max_applicants"`
	ExamScheduleCurrentApplicants int        `json:"exam_schedule_current_applicants"`
	ExamScheduleStatus            string     `json:"exam_schedule_status"`
	CreatedAt                     time.Time  `json:"created_at"`
	UpdatedAt                     time.Time  `json:"updated_at"`
}

func ToExamScheduleResponse(m *model.ExamScheduleModel, cert *certModel.CertificationModel) ExamScheduleResponse {
	resp := ExamScheduleResponse{
		ExamScheduleID:                m.ExamScheduleID,
		CertificationID:               m.CertificationID,
		ExamScheduleExamDate:          m.ExamScheduleExamDate,
		ExamScheduleRegistrationStart: m.ExamScheduleRegistrationStart,
		ExamScheduleRegistrationEnd:   m.ExamScheduleRegistrationEnd,
		ExamScheduleResultDate:        m.ExamScheduleResultDate,
		ExamScheduleLocation:          m.ExamScheduleLocation,
		ExamScheduleMaxApplicants:     m.ExamScheduleMaxApplicants,
		ExamScheduleCurrentApplicants: m.ExamScheduleCurrentApplicants,
		ExamScheduleStatus:            m.ExamScheduleStatus,
		CreatedAt:                     m.CreatedAt,
		UpdatedAt:                     m.UpdatedAt,
	}
	if cert != nil {
		resp.CertificationName = cert.CertificationName
	}
	return resp
}
