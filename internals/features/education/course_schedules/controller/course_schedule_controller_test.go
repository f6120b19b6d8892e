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

	model "certassoc_backend/internals/features/education/course_schedules/model"
	enrollModel "certassoc_backend/internals/features/education/enrollments/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.CourseScheduleModel{},
		&enrollModel.EnrollmentModel{},
	))
	return db
}

func deleteApp(db *gorm.DB) *fiber.App {
	ctrl := &CourseScheduleController{DB: db}
	app := fiber.New()
	app.Delete("/course-schedules/:id", ctrl.Delete)
	return app
}

func seedSchedule(t *testing.T, db *gorm.DB) *model.CourseScheduleModel {
	t.Helper()
	now := time.Now()
	sched := &model.CourseScheduleModel{
		CourseID:                        uuid.New(),
		CourseScheduleStartDate:         now.AddDate(0, 1, 0),
		CourseScheduleEndDate:           now.AddDate(0, 2, 0),
		CourseScheduleRegistrationStart: now,
		CourseScheduleRegistrationEnd:   now.AddDate(0, 0, 14),
		CourseScheduleMaxParticipants:   20,
		CourseScheduleStatus:            model.StatusRegistrationOpen,
	}
	require.NoError(t, db.Create(sched).Error)
	return sched
}

func TestDeleteRestrictedByEnrollments(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	sched := seedSchedule(t, db)
	require.NoError(t, db.Create(&enrollModel.EnrollmentModel{
		CourseScheduleID:    sched.CourseScheduleID,
		CourseID:            sched.CourseID,
		UserID:              uuid.New(),
		EnrollmentName:      "이영희",
		EnrollmentPhone:     "010-9876-5432",
		EnrollmentStatus:    enrollModel.EnrollStatusApplied,
		EnrollmentAppliedAt: time.Now(),
	}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/course-schedules/"+sched.CourseScheduleID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.CourseScheduleModel{}).
		Where("course_schedule_id = ?", sched.CourseScheduleID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteUnreferencedSchedule(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	sched := seedSchedule(t, db)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/course-schedules/"+sched.CourseScheduleID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.CourseScheduleModel{}).
		Where("course_schedule_id = ?", sched.CourseScheduleID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
