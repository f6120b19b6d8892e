package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	scheduleModel "certassoc_backend/internals/features/education/course_schedules/model"
	courseModel "certassoc_backend/internals/features/education/courses/model"
	enrollModel "certassoc_backend/internals/features/education/enrollments/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&courseModel.CourseModel{},
		&scheduleModel.CourseScheduleModel{},
		&enrollModel.EnrollmentModel{},
	))
	return db
}

func seedSchedule(t *testing.T, db *gorm.DB, maxParticipants int, status string) *scheduleModel.CourseScheduleModel {
	t.Helper()
	now := time.Now()
	course := courseModel.CourseModel{
		CourseName:   "품질경영 실무과정",
		CourseFee:    150000,
		CourseStatus: courseModel.StatusActive,
	}
	require.NoError(t, db.Create(&course).Error)

	sched := scheduleModel.CourseScheduleModel{
		CourseID:                        course.CourseID,
		CourseScheduleStartDate:         now.AddDate(0, 1, 0),
		CourseScheduleEndDate:           now.AddDate(0, 1, 2),
		CourseScheduleRegistrationStart: now.AddDate(0, 0, -7),
		CourseScheduleRegistrationEnd:   now.AddDate(0, 0, 7),
		CourseScheduleMaxParticipants:   maxParticipants,
		CourseScheduleStatus:            status,
	}
	require.NoError(t, db.Create(&sched).Error)
	return &sched
}

func enrollInput(scheduleID uuid.UUID) EnrollInput {
	return EnrollInput{
		CourseScheduleID: scheduleID,
		UserID:           uuid.New(),
		Name:             "이영희",
		Phone:            "010-9876-5432",
	}
}

func curParticipants(t *testing.T, db *gorm.DB, scheduleID uuid.UUID) int {
	t.Helper()
	var sched scheduleModel.CourseScheduleModel
	require.NoError(t, db.First(&sched, "course_schedule_id = ?", scheduleID).Error)
	return sched.CourseScheduleCurParticipants
}

func TestEnrollReservesSeat(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 2, scheduleModel.StatusRegistrationOpen)

	enr, err := Enroll(db, time.Now(), enrollInput(sched.CourseScheduleID))
	require.NoError(t, err)
	require.Equal(t, enrollModel.EnrollStatusApplied, enr.EnrollmentStatus)
	require.Equal(t, enrollModel.PayStatusPending, enr.EnrollmentPayStatus)
	require.Equal(t, enrollModel.CompletionInProgress, enr.EnrollmentCompletionStatus)
	require.Equal(t, sched.CourseID, enr.CourseID)
	require.Equal(t, 1, curParticipants(t, db, sched.CourseScheduleID))
}

func TestEnrollLastSeatWinsOnce(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 1, scheduleModel.StatusRegistrationOpen)

	_, err := Enroll(db, time.Now(), enrollInput(sched.CourseScheduleID))
	require.NoError(t, err)

	_, err = Enroll(db, time.Now(), enrollInput(sched.CourseScheduleID))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.Equal(t, 1, curParticipants(t, db, sched.CourseScheduleID))
}

func TestEnrollRejectsDuplicateUser(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 5, scheduleModel.StatusRegistrationOpen)

	in := enrollInput(sched.CourseScheduleID)
	_, err := Enroll(db, time.Now(), in)
	require.NoError(t, err)

	_, err = Enroll(db, time.Now(), in)
	require.ErrorIs(t, err, ErrDuplicateEnrollment)
}

func TestEnrollRequiresOpenRegistration(t *testing.T) {
	db := openTestDB(t)

	t.Run("closed status", func(t *testing.T) {
		sched := seedSchedule(t, db, 5, scheduleModel.StatusScheduled)
		_, err := Enroll(db, time.Now(), enrollInput(sched.CourseScheduleID))
		require.ErrorIs(t, err, ErrRegistrationClosed)
	})

	t.Run("outside window", func(t *testing.T) {
		sched := seedSchedule(t, db, 5, scheduleModel.StatusRegistrationOpen)
		after := sched.CourseScheduleRegistrationEnd.AddDate(0, 0, 1)
		_, err := Enroll(db, after, enrollInput(sched.CourseScheduleID))
		require.ErrorIs(t, err, ErrRegistrationClosed)
	})
}

func TestCancelReleasesSeat(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 1, scheduleModel.StatusRegistrationOpen)

	in := enrollInput(sched.CourseScheduleID)
	enr, err := Enroll(db, time.Now(), in)
	require.NoError(t, err)

	cancelled, err := Cancel(db, time.Now(), enr.EnrollmentID, &in.UserID)
	require.NoError(t, err)
	require.Equal(t, enrollModel.EnrollStatusCancelled, cancelled.EnrollmentStatus)
	require.Equal(t, enrollModel.PayStatusCancelled, cancelled.EnrollmentPayStatus)
	require.Equal(t, 0, curParticipants(t, db, sched.CourseScheduleID))

	// The freed seat is usable again.
	_, err = Enroll(db, time.Now(), enrollInput(sched.CourseScheduleID))
	require.NoError(t, err)

	_, err = Cancel(db, time.Now(), enr.EnrollmentID, nil)
	require.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCompletionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 5, scheduleModel.StatusRegistrationOpen)

	enr, err := Enroll(db, time.Now(), enrollInput(sched.CourseScheduleID))
	require.NoError(t, err)

	// Completion cannot change before the seat is confirmed.
	_, err = SetCompletionStatus(db, enr.EnrollmentID, enrollModel.CompletionCompleted)
	require.ErrorIs(t, err, ErrCompletionNotOpen)

	confirmed, err := ConfirmPayment(db, enr.EnrollmentID)
	require.NoError(t, err)
	require.Equal(t, enrollModel.EnrollStatusConfirmed, confirmed.EnrollmentStatus)

	_, err = ConfirmPayment(db, enr.EnrollmentID)
	require.ErrorIs(t, err, ErrPaymentNotPending)

	_, err = SetCompletionStatus(db, enr.EnrollmentID, "almost")
	require.ErrorIs(t, err, ErrInvalidStatus)

	done, err := SetCompletionStatus(db, enr.EnrollmentID, enrollModel.CompletionCompleted)
	require.NoError(t, err)
	require.Equal(t, enrollModel.CompletionCompleted, done.EnrollmentCompletionStatus)
	require.Equal(t, enrollModel.EnrollStatusCompleted, done.EnrollmentStatus)

	// A recorded outcome can be corrected afterwards.
	fixed, err := SetCompletionStatus(db, enr.EnrollmentID, enrollModel.CompletionIncomplete)
	require.NoError(t, err)
	require.Equal(t, enrollModel.CompletionIncomplete, fixed.EnrollmentCompletionStatus)
}
