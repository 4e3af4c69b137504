package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clasesya/clasesya-api/models"
)

func validCandidate(now time.Time) Candidate {
	start := now.Add(24 * time.Hour).Truncate(time.Hour)
	return Candidate{
		TeacherID: 1,
		StudentID: 2,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Slot: &models.AvailabilitySlot{
			TeacherID: 1,
			StartTime: start,
			IsActive:  true,
		},
	}
}

func TestValidateAcceptsWellFormedBooking(t *testing.T) {
	now := time.Now()
	require.NoError(t, Validate(validCandidate(now), now))
}

func TestValidateRejections(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mutate    func(*Candidate)
		wantField string
	}{
		{
			name: "end before start",
			mutate: func(c *Candidate) {
				c.EndTime = c.StartTime.Add(-time.Hour)
			},
			wantField: "end_time",
		},
		{
			name: "end equal to start",
			mutate: func(c *Candidate) {
				c.EndTime = c.StartTime
			},
			wantField: "end_time",
		},
		{
			name: "start in the past",
			mutate: func(c *Candidate) {
				c.StartTime = now.Add(-time.Hour)
				c.EndTime = c.StartTime.Add(time.Hour)
				c.Slot.StartTime = c.StartTime
			},
			wantField: "start_time",
		},
		{
			name: "ninety minute session",
			mutate: func(c *Candidate) {
				c.EndTime = c.StartTime.Add(90 * time.Minute)
			},
			wantField: "end_time",
		},
		{
			name: "half hour session",
			mutate: func(c *Candidate) {
				c.EndTime = c.StartTime.Add(30 * time.Minute)
			},
			wantField: "end_time",
		},
		{
			name: "slot owned by another teacher",
			mutate: func(c *Candidate) {
				c.Slot.TeacherID = 99
			},
			wantField: "slot",
		},
		{
			name: "inactive slot",
			mutate: func(c *Candidate) {
				c.Slot.IsActive = false
			},
			wantField: "slot",
		},
		{
			name: "slot start differs from session start",
			mutate: func(c *Candidate) {
				c.Slot.StartTime = c.StartTime.Add(time.Hour)
			},
			wantField: "slot",
		},
		{
			name: "slot already reserved",
			mutate: func(c *Candidate) {
				c.SlotReserved = true
			},
			wantField: "slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate(now)
			tt.mutate(&candidate)

			err := Validate(candidate, now)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestValidateStartGrace(t *testing.T) {
	now := time.Now()
	candidate := validCandidate(now)

	// Thirty seconds in the past is inside the one-minute grace window.
	candidate.StartTime = now.Add(-30 * time.Second)
	candidate.EndTime = candidate.StartTime.Add(time.Hour)
	candidate.Slot.StartTime = candidate.StartTime
	assert.NoError(t, Validate(candidate, now))

	// Two minutes in the past is not.
	candidate.StartTime = now.Add(-2 * time.Minute)
	candidate.EndTime = candidate.StartTime.Add(time.Hour)
	candidate.Slot.StartTime = candidate.StartTime
	assert.Error(t, Validate(candidate, now))
}

func TestValidateWithoutSlot(t *testing.T) {
	now := time.Now()
	candidate := validCandidate(now)
	candidate.Slot = nil
	candidate.SlotReserved = true // ignored when no slot is bound

	assert.NoError(t, Validate(candidate, now))
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	hour := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"identical intervals", hour(0), hour(1), hour(0), hour(1), true},
		{"b inside a", hour(0), hour(3), hour(1), hour(2), true},
		{"partial overlap", hour(0), hour(2), hour(1), hour(3), true},
		{"touching endpoints", hour(0), hour(1), hour(1), hour(2), false},
		{"disjoint", hour(0), hour(1), hour(2), hour(3), false},
		{"touching the other way", hour(1), hour(2), hour(0), hour(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(&ValidationError{Field: "slot", Message: "slot already reserved"}))
	assert.False(t, IsValidation(ErrConflict))
	assert.False(t, IsValidation(nil))
}
