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

	scheduleModel "certassoc_backend/internals/features/education/course_schedules/model"
	model "certassoc_backend/internals/features/education/courses/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.CourseModel{},
		&scheduleModel.CourseScheduleModel{},
	))
	return db
}

func deleteApp(db *gorm.DB) *fiber.App {
	ctrl := &CourseController{DB: db}
	app := fiber.New()
	app.Delete("/courses/:id", ctrl.Delete)
	return app
}

func TestDeleteRestrictedBySchedules(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	course := &model.CourseModel{CourseName: "회계실무 기초", CourseStatus: model.StatusActive}
	require.NoError(t, db.Create(course).Error)

	now := time.Now()
	require.NoError(t, db.Create(&scheduleModel.CourseScheduleModel{
		CourseID:                        course.CourseID,
		CourseScheduleStartDate:         now.AddDate(0, 1, 0),
		CourseScheduleEndDate:           now.AddDate(0, 2, 0),
		CourseScheduleRegistrationStart: now,
		CourseScheduleRegistrationEnd:   now.AddDate(0, 0, 14),
		CourseScheduleMaxParticipants:   20,
		CourseScheduleStatus:            scheduleModel.StatusRegistrationOpen,
	}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/courses/"+course.CourseID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.CourseModel{}).
		Where("course_id = ?", course.CourseID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteUnreferencedCourse(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	course := &model.CourseModel{CourseName: "세무회계 심화", CourseStatus: model.StatusActive}
	require.NoError(t, db.Create(course).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/courses/"+course.CourseID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.CourseModel{}).
		Where("course_id = ?", course.CourseID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
