package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "certassoc_backend/internals/features/education/course_schedules/model"
	"certassoc_backend/internals/features/education/enrollments/model"
)

var (
	ErrScheduleNotFound    = errors.New("course schedule not found")
	ErrRegistrationClosed  = errors.New("registration is not open for this schedule")
	ErrCapacityExceeded    = errors.New("course schedule is full")
	ErrDuplicateEnrollment = errors.New("user already enrolled in this schedule")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrAlreadyCancelled    = errors.New("enrollment is already cancelled")
	ErrPaymentNotPending   = errors.New("payment is not pending")
	ErrInvalidStatus       = errors.New("invalid enrollment status")
	ErrCompletionNotOpen   = errors.New("completion status can only change on a confirmed enrollment")
)

type EnrollInput struct {
	CourseScheduleID uuid.UUID
	UserID           uuid.UUID
	Name             string
	Phone            string
	Email            *string
	Organization     *string
}

// Enroll reserves a seat and creates the enrollment inside one transaction.
// The seat is taken with a single conditional UPDATE so two concurrent
// enrollments for the last seat cannot both win.
func Enroll(db *gorm.DB, now time.Time, in EnrollInput) (*model.EnrollmentModel, error) {
	var enr *model.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var sched scheduleModel.CourseScheduleModel
		if err := tx.First(&sched, "course_schedule_id = ?", in.CourseScheduleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}

		if sched.CourseScheduleStatus != scheduleModel.StatusRegistrationOpen {
			return ErrRegistrationClosed
		}
		if now.Before(sched.CourseScheduleRegistrationStart) || now.After(sched.CourseScheduleRegistrationEnd) {
			return ErrRegistrationClosed
		}

		var dup int64
		if err := tx.Model(&model.EnrollmentModel{}).
			Where("course_schedule_id = ? AND user_id = ?", in.CourseScheduleID, in.UserID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateEnrollment
		}

		res := tx.Model(&scheduleModel.CourseScheduleModel{}).
			Where("course_schedule_id = ? AND course_schedule_cur_participants < course_schedule_max_participants", in.CourseScheduleID).
			Update("course_schedule_cur_participants", gorm.Expr("course_schedule_cur_participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCapacityExceeded
		}

		enr = &model.EnrollmentModel{
			CourseScheduleID:           in.CourseScheduleID,
			CourseID:                   sched.CourseID,
			UserID:                     in.UserID,
			EnrollmentName:             in.Name,
			EnrollmentPhone:            in.Phone,
			EnrollmentEmail:            in.Email,
			EnrollmentOrganization:     in.Organization,
			EnrollmentStatus:           model.EnrollStatusApplied,
			EnrollmentPayStatus:        model.PayStatusPending,
			EnrollmentCompletionStatus: model.CompletionInProgress,
			EnrollmentAppliedAt:        now,
		}
		return tx.Create(enr).Error
	})
	if err != nil {
		return nil, err
	}
	return enr, nil
}

// Cancel marks the enrollment cancelled and releases its seat. onlyOwner,
// when set, restricts the cancel to the enrollee; admins pass nil.
func Cancel(db *gorm.DB, now time.Time, enrollmentID uuid.UUID, onlyOwner *uuid.UUID) (*model.EnrollmentModel, error) {
	var enr model.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("enrollment_id = ?", enrollmentID)
		if onlyOwner != nil {
			q = q.Where("user_id = ?", *onlyOwner)
		}
		if err := q.First(&enr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEnrollmentNotFound
			}
			return err
		}
		if enr.EnrollmentStatus == model.EnrollStatusCancelled {
			return ErrAlreadyCancelled
		}

		enr.EnrollmentStatus = model.EnrollStatusCancelled
		enr.EnrollmentCancelledAt = &now
		if enr.EnrollmentPayStatus == model.PayStatusPending {
			enr.EnrollmentPayStatus = model.PayStatusCancelled
		}
		if err := tx.Save(&enr).Error; err != nil {
			return err
		}

		// Floor at zero.
		return tx.Model(&scheduleModel.CourseScheduleModel{}).
			Where("course_schedule_id = ? AND course_schedule_cur_participants > 0", enr.CourseScheduleID).
			Update("course_schedule_cur_participants", gorm.Expr("course_schedule_cur_participants - 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &enr, nil
}

// ConfirmPayment moves a pending payment to completed and confirms the seat.
func ConfirmPayment(db *gorm.DB, enrollmentID uuid.UUID) (*model.EnrollmentModel, error) {
	var enr model.EnrollmentModel
	if err := db.First(&enr, "enrollment_id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	if enr.EnrollmentPayStatus != model.PayStatusPending {
		return nil, ErrPaymentNotPending
	}
	enr.EnrollmentPayStatus = model.PayStatusCompleted
	enr.EnrollmentStatus = model.EnrollStatusConfirmed
	if err := db.Save(&enr).Error; err != nil {
		return nil, err
	}
	return &enr, nil
}

// SetCompletionStatus records the training outcome for a confirmed or
// completed enrollment. Marking "completed" also closes the enrollment.
func SetCompletionStatus(db *gorm.DB, enrollmentID uuid.UUID, completion string) (*model.EnrollmentModel, error) {
	if !model.IsValidCompletionStatus(completion) {
		return nil, ErrInvalidStatus
	}
	var enr model.EnrollmentModel
	if err := db.First(&enr, "enrollment_id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	switch enr.EnrollmentStatus {
	case model.EnrollStatusConfirmed, model.EnrollStatusCompleted:
	default:
		return nil, ErrCompletionNotOpen
	}

	enr.EnrollmentCompletionStatus = completion
	if completion == model.CompletionCompleted {
		enr.EnrollmentStatus = model.EnrollStatusCompleted
	}
	if err := db.Save(&enr).Error; err != nil {
		return nil, err
	}
	return &enr, nil
}
