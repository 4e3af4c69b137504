package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from SessionStatus
		to   SessionStatus
		want bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestHasFinished(t *testing.T) {
	end := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	session := Session{
		StartTime: end.Add(-time.Hour),
		EndTime:   end,
	}

	assert.False(t, session.HasFinished(end.Add(-time.Minute)))
	assert.True(t, session.HasFinished(end))
	assert.True(t, session.HasFinished(end.Add(time.Minute)))
}

func TestIsParticipant(t *testing.T) {
	session := Session{
		Teacher: TeacherProfile{UserID: 10},
		Student: StudentProfile{UserID: 20},
	}

	assert.True(t, session.IsParticipant(10))
	assert.True(t, session.IsParticipant(20))
	assert.False(t, session.IsParticipant(30))
}
