package controller

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appModel "certassoc_backend/internals/features/certifications/exam_applications/model"
	model "certassoc_backend/internals/features/certifications/exam_schedules/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.ExamScheduleModel{},
		&appModel.ExamApplicationModel{},
	))
	return db
}

func deleteApp(db *gorm.DB) *fiber.App {
	ctrl := &ExamScheduleController{DB: db}
	app := fiber.New()
	app.Delete("/exam-schedules/:id", ctrl.Delete)
	return app
}

func seedSchedule(t *testing.T, db *gorm.DB) *model.ExamScheduleModel {
	t.Helper()
	now := time.Now()
	sched := &model.ExamScheduleModel{
		CertificationID:               uuid.New(),
		ExamScheduleExamDate:          now.AddDate(0, 1, 0),
		ExamScheduleRegistrationStart: now,
		ExamScheduleRegistrationEnd:   now.AddDate(0, 0, 14),
		ExamScheduleMaxApplicants:     30,
		ExamScheduleStatus:            model.StatusRegistrationOpen,
	}
	require.NoError(t, db.Create(sched).Error)
	return sched
}

func TestDeleteRestrictedByApplications(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	sched := seedSchedule(t, db)
	require.NoError(t, db.Create(&appModel.ExamApplicationModel{
		ExamScheduleID:             sched.ExamScheduleID,
		CertificationID:            sched.CertificationID,
		UserID:                     uuid.New(),
		ExamApplicationName:        "김철수",
		ExamApplicationPhone:       "010-1234-5678",
		ExamApplicationStatus:      appModel.AppStatusSubmitted,
		ExamApplicationPayStatus:   appModel.PayStatusPending,
		ExamApplicationSubmittedAt: time.Now(),
	}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/exam-schedules/"+sched.ExamScheduleID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ExamScheduleModel{}).
		Where("exam_schedule_id = ?", sched.ExamScheduleID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteUnreferencedSchedule(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	sched := seedSchedule(t, db)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/exam-schedules/"+sched.ExamScheduleID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ExamScheduleModel{}).
		Where("exam_schedule_id = ?", sched.ExamScheduleID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
