package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityTagsRoundTrip(t *testing.T) {
	var profile TeacherProfile
	err := profile.SetAvailabilityTags([]AvailabilityTag{
		AvailabilityMorning,
		AvailabilityWeekend,
		AvailabilityMorning, // duplicates collapse
	})
	require.NoError(t, err)

	assert.Equal(t, "morning,weekend", profile.Availability)
	assert.Equal(t, []AvailabilityTag{AvailabilityMorning, AvailabilityWeekend}, profile.AvailabilityTags())
}

func TestSetAvailabilityTagsRejectsUnknown(t *testing.T) {
	var profile TeacherProfile
	err := profile.SetAvailabilityTags([]AvailabilityTag{"midnight"})
	assert.ErrorIs(t, err, ErrUnknownAvailabilityTag)
}

func TestAvailabilityTagsSkipsGarbage(t *testing.T) {
	profile := TeacherProfile{Availability: "morning, bogus ,weekend,"}
	assert.Equal(t, []AvailabilityTag{AvailabilityMorning, AvailabilityWeekend}, profile.AvailabilityTags())
}

func TestHasAllAvailability(t *testing.T) {
	profile := TeacherProfile{Availability: "morning,weekend"}

	tests := []struct {
		name     string
		required []AvailabilityTag
		want     bool
	}{
		{"no requirement", nil, true},
		{"single match", []AvailabilityTag{AvailabilityMorning}, true},
		{"full superset", []AvailabilityTag{AvailabilityMorning, AvailabilityWeekend}, true},
		{"missing tag", []AvailabilityTag{AvailabilityAfternoon}, false},
		{"partial coverage", []AvailabilityTag{AvailabilityMorning, AvailabilityEvening}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profile.HasAllAvailability(tt.required))
		})
	}
}

func TestHasAllAvailabilityExcludesAfternoonOnlyTeacher(t *testing.T) {
	// A teacher tagged {afternoon} must not satisfy a {morning} requirement,
	// regardless of subject match.
	profile := TeacherProfile{
		Subjects:     "Physics",
		Availability: "afternoon",
	}

	assert.True(t, profile.MatchesSubject("physics"))
	assert.False(t, profile.HasAllAvailability([]AvailabilityTag{AvailabilityMorning}))
}

func TestMatchesSubject(t *testing.T) {
	profile := TeacherProfile{Subjects: "Fisica avanzada, Matematicas"}

	assert.True(t, profile.MatchesSubject(""))
	assert.True(t, profile.MatchesSubject("fisica"))
	assert.True(t, profile.MatchesSubject("MATEMA"))
	assert.False(t, profile.MatchesSubject("historia"))
}

func TestAvailabilityLabels(t *testing.T) {
	profile := TeacherProfile{Availability: "evening,weekend"}
	assert.Equal(t, []string{"Evenings", "Weekends"}, profile.AvailabilityLabels())
}
