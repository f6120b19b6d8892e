package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"certassoc_backend/internals/features/certifications/exam_applications/model"
	scheduleModel "certassoc_backend/internals/features/certifications/exam_schedules/model"
)

var (
	ErrScheduleNotFound     = errors.New("exam schedule not found")
	ErrRegistrationClosed   = errors.New("registration is not open for this schedule")
	ErrCapacityExceeded     = errors.New("exam schedule is full")
	ErrDuplicateApplication = errors.New("user already applied to this schedule")
	ErrApplicationNotFound  = errors.New("exam application not found")
	ErrAlreadyCancelled     = errors.New("exam application is already cancelled")
	ErrPaymentNotPending    = errors.New("payment is not pending")
	ErrPassNotAllowed       = errors.New("pass status cannot be set in the current application status")
	ErrInvalidStatus        = errors.New("invalid application status")
)

// SubmitInput carries everything Submit needs; the applicant fields are
// snapshotted onto the application row.
type SubmitInput struct {
	ExamScheduleID uuid.UUID
	UserID         uuid.UUID
	Name           string
	Phone          string
	Email          *string
	BirthDate      *time.Time
	Address        *string
	PaymentMethod  *string
}

// Submit creates an application inside one transaction. The capacity slot is
// reserved with a single conditional UPDATE so two concurrent submissions for
// the last seat cannot both win.
func Submit(db *gorm.DB, now time.Time, in SubmitInput) (*model.ExamApplicationModel, error) {
	var app *model.ExamApplicationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var sched scheduleModel.ExamScheduleModel
		if err := tx.First(&sched, "exam_schedule_id = ?", in.ExamScheduleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}

		if sched.ExamScheduleStatus != scheduleModel.StatusRegistrationOpen {
			return ErrRegistrationClosed
		}
		if now.Before(sched.ExamScheduleRegistrationStart) || now.After(sched.ExamScheduleRegistrationEnd) {
			return ErrRegistrationClosed
		}

		var dup int64
		if err := tx.Model(&model.ExamApplicationModel{}).
			Where("exam_schedule_id = ? AND user_id = ?", in.ExamScheduleID, in.UserID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateApplication
		}

		res := tx.Model(&scheduleModel.ExamScheduleModel{}).
			Where("exam_schedule_id = ? AND exam_schedule_current_applicants < exam_schedule_max_applicants", in.ExamScheduleID).
			Update("exam_schedule_current_applicants", gorm.Expr("exam_schedule_current_applicants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCapacityExceeded
		}

		app = &model.ExamApplicationModel{
			ExamScheduleID:             in.ExamScheduleID,
			CertificationID:            sched.CertificationID,
			UserID:                     in.UserID,
			ExamApplicationName:        in.Name,
			ExamApplicationPhone:       in.Phone,
			ExamApplicationEmail:       in.Email,
			ExamApplicationBirthDate:   in.BirthDate,
			ExamApplicationAddress:     in.Address,
			ExamApplicationStatus:      model.AppStatusSubmitted,
			ExamApplicationPayStatus:   model.PayStatusPending,
			ExamApplicationPayMethod:   in.PaymentMethod,
			ExamApplicationSubmittedAt: now,
		}
		return tx.Create(app).Error
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Cancel marks the application cancelled and releases its slot. onlyOwner,
// when set, restricts the cancel to the applicant (member self-service);
// admins pass nil.
func Cancel(db *gorm.DB, now time.Time, applicationID uuid.UUID, onlyOwner *uuid.UUID) (*model.ExamApplicationModel, error) {
	var app model.ExamApplicationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("exam_application_id = ?", applicationID)
		if onlyOwner != nil {
			q = q.Where("user_id = ?", *onlyOwner)
		}
		if err := q.First(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}
		if app.ExamApplicationStatus == model.AppStatusCancelled {
			return ErrAlreadyCancelled
		}

		app.ExamApplicationStatus = model.AppStatusCancelled
		app.ExamApplicationCancelledAt = &now
		if app.ExamApplicationPayStatus == model.PayStatusPending {
			app.ExamApplicationPayStatus = model.PayStatusCancelled
		}
		if err := tx.Save(&app).Error; err != nil {
			return err
		}

		// Floor at zero; the counter must never go negative even if it was
		// repaired by hand.
		return tx.Model(&scheduleModel.ExamScheduleModel{}).
			Where("exam_schedule_id = ? AND exam_schedule_current_applicants > 0", app.ExamScheduleID).
			Update("exam_schedule_current_applicants", gorm.Expr("exam_schedule_current_applicants - 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ConfirmPayment moves a pending payment to completed and advances the
// application status.
func ConfirmPayment(db *gorm.DB, applicationID uuid.UUID) (*model.ExamApplicationModel, error) {
	var app model.ExamApplicationModel
	if err := db.First(&app, "exam_application_id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if app.ExamApplicationPayStatus != model.PayStatusPending {
		return nil, ErrPaymentNotPending
	}
	app.ExamApplicationPayStatus = model.PayStatusCompleted
	app.ExamApplicationStatus = model.AppStatusPaymentCompleted
	if err := db.Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// SetPassStatus records the exam result. Results can only land on
// applications that got as far as a completed payment.
func SetPassStatus(db *gorm.DB, applicationID uuid.UUID, passed bool) (*model.ExamApplicationModel, error) {
	var app model.ExamApplicationModel
	if err := db.First(&app, "exam_application_id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	switch app.ExamApplicationStatus {
	case model.AppStatusPaymentCompleted, model.AppStatusConfirmed,
		model.AppStatusExamTaken, model.AppStatusPassed, model.AppStatusFailed:
	default:
		return nil, ErrPassNotAllowed
	}

	app.ExamApplicationPassStatus = &passed
	if passed {
		app.ExamApplicationStatus = model.AppStatusPassed
	} else {
		app.ExamApplicationStatus = model.AppStatusFailed
	}
	if err := db.Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateStatus is the admin free-move between lifecycle states. Moving into
// or out of "cancelled" goes through Cancel/Submit so the seat counter stays
// honest; this helper rejects those transitions.
func UpdateStatus(db *gorm.DB, applicationID uuid.UUID, status string) (*model.ExamApplicationModel, error) {
	if !model.IsValidAppStatus(status) || status == model.AppStatusCancelled {
		return nil, ErrInvalidStatus
	}
	var app model.ExamApplicationModel
	if err := db.First(&app, "exam_application_id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if app.ExamApplicationStatus == model.AppStatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	app.ExamApplicationStatus = status
	if err := db.Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
