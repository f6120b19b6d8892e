package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestValidateDateOrder(t *testing.T) {
	resultDate := day(40)

	t.Run("valid ordering passes", func(t *testing.T) {
		msg := ValidateDateOrder(day(0), day(14), day(30), &resultDate)
		assert.Empty(t, msg)
	})

	t.Run("result date optional", func(t *testing.T) {
		msg := ValidateDateOrder(day(0), day(14), day(30), nil)
		assert.Empty(t, msg)
	})

	t.Run("registration window inverted", func(t *testing.T) {
		msg := ValidateDateOrder(day(14), day(0), day(30), nil)
		assert.Contains(t, msg, "registration_start")
	})

	t.Run("exam before registration end", func(t *testing.T) {
		msg := ValidateDateOrder(day(0), day(30), day(14), nil)
		assert.Contains(t, msg, "registration_end")
	})

	t.Run("result before exam", func(t *testing.T) {
		early := day(20)
		msg := ValidateDateOrder(day(0), day(14), day(30), &early)
		assert.Contains(t, msg, "exam_date")
	})

	t.Run("equal boundaries rejected", func(t *testing.T) {
		msg := ValidateDateOrder(day(0), day(0), day(30), nil)
		assert.NotEmpty(t, msg)
	})
}
