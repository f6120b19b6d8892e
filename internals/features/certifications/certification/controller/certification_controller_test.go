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

	model "certassoc_backend/internals/features/certifications/certification/model"
	scheduleModel "certassoc_backend/internals/features/certifications/exam_schedules/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.CertificationModel{},
		&scheduleModel.ExamScheduleModel{},
	))
	return db
}

func deleteApp(db *gorm.DB) *fiber.App {
	ctrl := &CertificationController{DB: db}
	app := fiber.New()
	app.Delete("/certifications/:id", ctrl.Delete)
	return app
}

func seedCertification(t *testing.T, db *gorm.DB) *model.CertificationModel {
	t.Helper()
	cert := &model.CertificationModel{
		CertificationName:               "전산회계운용사",
		CertificationRegistrationNumber: uuid.NewString(),
		CertificationStatus:             model.StatusActive,
	}
	require.NoError(t, db.Create(cert).Error)
	return cert
}

func TestDeleteRestrictedBySchedules(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	cert := seedCertification(t, db)
	now := time.Now()
	require.NoError(t, db.Create(&scheduleModel.ExamScheduleModel{
		CertificationID:               cert.CertificationID,
		ExamScheduleExamDate:          now.AddDate(0, 1, 0),
		ExamScheduleRegistrationStart: now,
		ExamScheduleRegistrationEnd:   now.AddDate(0, 0, 14),
		ExamScheduleMaxApplicants:     30,
		ExamScheduleStatus:            scheduleModel.StatusRegistrationOpen,
	}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/certifications/"+cert.CertificationID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// The row must survive the refused delete.
	var count int64
	require.NoError(t, db.Model(&model.CertificationModel{}).
		Where("certification_id = ?", cert.CertificationID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteUnreferencedCertification(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	cert := seedCertification(t, db)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/certifications/"+cert.CertificationID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.CertificationModel{}).
		Where("certification_id = ?", cert.CertificationID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDeleteUnknownCertification(t *testing.T) {
	db := openTestDB(t)
	app := deleteApp(db)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/certifications/"+uuid.NewString(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
