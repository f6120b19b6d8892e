package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	certModel "certassoc_backend/internals/features/certifications/certification/model"
	appModel "certassoc_backend/internals/features/certifications/exam_applications/model"
	scheduleModel "certassoc_backend/internals/features/certifications/exam_schedules/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&certModel.CertificationModel{},
		&scheduleModel.ExamScheduleModel{},
		&appModel.ExamApplicationModel{},
	))
	return db
}

func seedSchedule(t *testing.T, db *gorm.DB, maxApplicants int, status string) *scheduleModel.ExamScheduleModel {
	t.Helper()
	now := time.Now()
	cert := certModel.CertificationModel{
		CertificationName:               "품질관리기사",
		CertificationRegistrationNumber: "2019-" + uuid.NewString()[:8],
		CertificationStatus:             certModel.StatusActive,
	}
	require.NoError(t, db.Create(&cert).Error)

	sched := scheduleModel.ExamScheduleModel{
		CertificationID:               cert.CertificationID,
		ExamScheduleExamDate:          now.AddDate(0, 1, 0),
		ExamScheduleRegistrationStart: now.AddDate(0, 0, -7),
		ExamScheduleRegistrationEnd:   now.AddDate(0, 0, 7),
		ExamScheduleMaxApplicants:     maxApplicants,
		ExamScheduleStatus:            status,
	}
	require.NoError(t, db.Create(&sched).Error)
	return &sched
}

func submitInput(scheduleID uuid.UUID) SubmitInput {
	return SubmitInput{
		ExamScheduleID: scheduleID,
		UserID:         uuid.New(),
		Name:           "김철수",
		Phone:          "010-1234-5678",
	}
}

func currentApplicants(t *testing.T, db *gorm.DB, scheduleID uuid.UUID) int {
	t.Helper()
	var sched scheduleModel.ExamScheduleModel
	require.NoError(t, db.First(&sched, "exam_schedule_id = ?", scheduleID).Error)
	return sched.ExamScheduleCurrentApplicants
}

func TestSubmitReservesSlot(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 3, scheduleModel.StatusRegistrationOpen)

	app, err := Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
	require.NoError(t, err)
	require.Equal(t, appModel.AppStatusSubmitted, app.ExamApplicationStatus)
	require.Equal(t, appModel.PayStatusPending, app.ExamApplicationPayStatus)
	require.Equal(t, sched.CertificationID, app.CertificationID)
	require.Nil(t, app.ExamApplicationPassStatus)
	require.Equal(t, 1, currentApplicants(t, db, sched.ExamScheduleID))
}

func TestSubmitLastSeatWinsOnce(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 1, scheduleModel.StatusRegistrationOpen)

	_, err := Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
	require.NoError(t, err)

	_, err = Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
	require.ErrorIs(t, err, ErrCapacityExceeded)

	// The losing transaction must not leave a phantom reservation behind.
	require.Equal(t, 1, currentApplicants(t, db, sched.ExamScheduleID))
	var count int64
	require.NoError(t, db.Model(&appModel.ExamApplicationModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSubmitConcurrentLastSeat(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection makes sqlite serialize the two transactions
	// instead of failing the loser with a busy error.
	sqlDB.SetMaxOpenConns(1)

	sched := seedSchedule(t, db, 1, scheduleModel.StatusRegistrationOpen)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrCapacityExceeded):
			lost++
		default:
			t.Fatalf("unexpected submit error: %v", err)
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, 1, lost)
	require.Equal(t, 1, currentApplicants(t, db, sched.ExamScheduleID))
}

func TestSubmitRejectsDuplicateUser(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 5, scheduleModel.StatusRegistrationOpen)

	in := submitInput(sched.ExamScheduleID)
	_, err := Submit(db, time.Now(), in)
	require.NoError(t, err)

	_, err = Submit(db, time.Now(), in)
	require.ErrorIs(t, err, ErrDuplicateApplication)
	require.Equal(t, 1, currentApplicants(t, db, sched.ExamScheduleID))
}

func TestSubmitRequiresOpenRegistration(t *testing.T) {
	db := openTestDB(t)

	t.Run("closed status", func(t *testing.T) {
		sched := seedSchedule(t, db, 5, scheduleModel.StatusScheduled)
		_, err := Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
		require.ErrorIs(t, err, ErrRegistrationClosed)
	})

	t.Run("outside window", func(t *testing.T) {
		sched := seedSchedule(t, db, 5, scheduleModel.StatusRegistrationOpen)
		after := sched.ExamScheduleRegistrationEnd.AddDate(0, 0, 1)
		_, err := Submit(db, after, submitInput(sched.ExamScheduleID))
		require.ErrorIs(t, err, ErrRegistrationClosed)
	})

	t.Run("unknown schedule", func(t *testing.T) {
		_, err := Submit(db, time.Now(), submitInput(uuid.New()))
		require.ErrorIs(t, err, ErrScheduleNotFound)
	})
}

func TestCancelReleasesSlot(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 1, scheduleModel.StatusRegistrationOpen)

	in := submitInput(sched.ExamScheduleID)
	app, err := Submit(db, time.Now(), in)
	require.NoError(t, err)
	require.Equal(t, 1, currentApplicants(t, db, sched.ExamScheduleID))

	cancelled, err := Cancel(db, time.Now(), app.ExamApplicationID, &in.UserID)
	require.NoError(t, err)
	require.Equal(t, appModel.AppStatusCancelled, cancelled.ExamApplicationStatus)
	require.Equal(t, appModel.PayStatusCancelled, cancelled.ExamApplicationPayStatus)
	require.NotNil(t, cancelled.ExamApplicationCancelledAt)
	require.Equal(t, 0, currentApplicants(t, db, sched.ExamScheduleID))

	// The freed seat is usable again.
	_, err = Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
	require.NoError(t, err)

	_, err = Cancel(db, time.Now(), app.ExamApplicationID, nil)
	require.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelEnforcesOwnership(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 2, scheduleModel.StatusRegistrationOpen)

	app, err := Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
	require.NoError(t, err)

	stranger := uuid.New()
	_, err = Cancel(db, time.Now(), app.ExamApplicationID, &stranger)
	require.ErrorIs(t, err, ErrApplicationNotFound)
	require.Equal(t, 1, currentApplicants(t, db, sched.ExamScheduleID))
}

func TestConfirmPayment(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 2, scheduleModel.StatusRegistrationOpen)

	app, err := Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
	require.NoError(t, err)

	paid, err := ConfirmPayment(db, app.ExamApplicationID)
	require.NoError(t, err)
	require.Equal(t, appModel.PayStatusCompleted, paid.ExamApplicationPayStatus)
	require.Equal(t, appModel.AppStatusPaymentCompleted, paid.ExamApplicationStatus)

	_, err = ConfirmPayment(db, app.ExamApplicationID)
	require.ErrorIs(t, err, ErrPaymentNotPending)
}

func TestSetPassStatus(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 5, scheduleModel.StatusRegistrationOpen)

	app, err := Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
	require.NoError(t, err)

	// Results cannot land before payment completes.
	_, err = SetPassStatus(db, app.ExamApplicationID, true)
	require.ErrorIs(t, err, ErrPassNotAllowed)

	_, err = ConfirmPayment(db, app.ExamApplicationID)
	require.NoError(t, err)

	passed, err := SetPassStatus(db, app.ExamApplicationID, true)
	require.NoError(t, err)
	require.NotNil(t, passed.ExamApplicationPassStatus)
	require.True(t, *passed.ExamApplicationPassStatus)
	require.Equal(t, appModel.AppStatusPassed, passed.ExamApplicationStatus)

	// A result can be corrected afterwards.
	failed, err := SetPassStatus(db, app.ExamApplicationID, false)
	require.NoError(t, err)
	require.False(t, *failed.ExamApplicationPassStatus)
	require.Equal(t, appModel.AppStatusFailed, failed.ExamApplicationStatus)
}

func TestUpdateStatusGuardsCancellation(t *testing.T) {
	db := openTestDB(t)
	sched := seedSchedule(t, db, 5, scheduleModel.StatusRegistrationOpen)

	app, err := Submit(db, time.Now(), submitInput(sched.ExamScheduleID))
	require.NoError(t, err)

	_, err = UpdateStatus(db, app.ExamApplicationID, appModel.AppStatusCancelled)
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = UpdateStatus(db, app.ExamApplicationID, "whatever")
	require.ErrorIs(t, err, ErrInvalidStatus)

	moved, err := UpdateStatus(db, app.ExamApplicationID, appModel.AppStatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, appModel.AppStatusConfirmed, moved.ExamApplicationStatus)
}
