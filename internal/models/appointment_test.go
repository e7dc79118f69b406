package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salon-booking-api/internal/models"
)

func TestAppointmentOverlaps(t *testing.T) {
	base := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	appt := models.Appointment{StartTime: base, EndTime: base.Add(time.Hour)}

	// Touching intervals are not overlaps (§8).
	assert.False(t, appt.Overlaps(base.Add(-time.Hour), base))
	assert.False(t, appt.Overlaps(appt.EndTime, appt.EndTime.Add(time.Hour)))

	// Any genuine intersection overlaps.
	assert.True(t, appt.Overlaps(base.Add(-30*time.Minute), base.Add(30*time.Minute)))
	assert.True(t, appt.Overlaps(base.Add(30*time.Minute), base.Add(90*time.Minute)))
	assert.True(t, appt.Overlaps(base, appt.EndTime))
}
