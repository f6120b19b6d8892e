package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestValidateDateOrder(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		require.Empty(t, ValidateDateOrder(day(0), day(10), day(14), day(16)))
	})

	t.Run("registration may close on the start date", func(t *testing.T) {
		require.Empty(t, ValidateDateOrder(day(0), day(10), day(10), day(12)))
	})

	t.Run("single day course", func(t *testing.T) {
		require.Empty(t, ValidateDateOrder(day(0), day(10), day(14), day(14)))
	})

	t.Run("inverted registration window", func(t *testing.T) {
		require.NotEmpty(t, ValidateDateOrder(day(10), day(0), day(14), day(16)))
	})

	t.Run("course starts before registration closes", func(t *testing.T) {
		require.NotEmpty(t, ValidateDateOrder(day(0), day(10), day(9), day(16)))
	})

	t.Run("end before start", func(t *testing.T) {
		require.NotEmpty(t, ValidateDateOrder(day(0), day(10), day(14), day(13)))
	})
}
