package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotEndTime(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	slot := AvailabilitySlot{StartTime: start}

	assert.Equal(t, start.Add(time.Hour), slot.EndTime())
	assert.Equal(t, SessionDuration, slot.EndTime().Sub(slot.StartTime))
}

func TestSlotIsFuture(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	future := AvailabilitySlot{StartTime: now.Add(time.Minute)}
	current := AvailabilitySlot{StartTime: now}
	past := AvailabilitySlot{StartTime: now.Add(-time.Minute)}

	assert.True(t, future.IsFuture(now))
	assert.False(t, current.IsFuture(now))
	assert.False(t, past.IsFuture(now))
}
